// Command samgo-anonymous demonstrates anonymous raw datagrams: the server
// listens on port 7777 while a client, launched in the same process and
// bound to port 8888, sends it a message every few seconds.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-i2p/sam3go/endpoint"
)

func client(dest string) {
	time.Sleep(2 * time.Second)

	sock, err := endpoint.NewRawDatagram(8888)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: failed to create raw socket: %v\n", err)
		return
	}
	defer sock.Close()

	msg := []byte("Hello, world!")
	for {
		if err := sock.SendTo(msg, dest); err != nil {
			fmt.Fprintf(os.Stderr, "client: send failed: %v\n", err)
			return
		}
		time.Sleep(5 * time.Second)
	}
}

func main() {
	// Unlike the legacy v1/v2 way of routing incoming datagrams through the
	// control connection, this library always binds a dedicated local UDP
	// port for inbound traffic, so one must be chosen up front.
	sock, err := endpoint.NewRawDatagram(7777)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create raw socket: %v\n", err)
		os.Exit(1)
	}
	defer sock.Close()

	localDest := sock.GetLocalDest()
	go client(localDest)

	fmt.Println("waiting for incoming raw datagrams...")

	buf := make([]byte, 13)
	for {
		n, err := sock.Recv(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "recv failed: %v\n", err)
			continue
		}
		fmt.Printf("client sent: %q\n", buf[:n])
	}
}
