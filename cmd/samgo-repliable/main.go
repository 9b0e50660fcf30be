// Command samgo-repliable demonstrates repliable datagrams: both sides
// create a RepliableDatagram socket, the client learns the server's
// destination out of band, and each reply uses the sender address
// RecvFrom reports rather than a fixed destination.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-i2p/sam3go/endpoint"
)

func client(dest string) {
	time.Sleep(2 * time.Second)

	sock, err := endpoint.NewRepliableDatagram(8888)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: failed to create repliable socket: %v\n", err)
		return
	}
	defer sock.Close()

	msg := []byte("Hello, server")
	buf := make([]byte, 13)

	for {
		if err := sock.SendTo(msg, dest); err != nil {
			fmt.Fprintf(os.Stderr, "client: send failed: %v\n", err)
			return
		}
		n, _, err := sock.RecvFrom(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "client: recv failed: %v\n", err)
			return
		}
		fmt.Printf("server sent: %q\n", buf[:n])
		time.Sleep(5 * time.Second)
	}
}

func main() {
	sock, err := endpoint.NewRepliableDatagram(7777)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create repliable socket: %v\n", err)
		os.Exit(1)
	}
	defer sock.Close()

	localDest := sock.GetLocalDest()
	go client(localDest)

	msg := []byte("Hello, client")
	buf := make([]byte, 13)

	for {
		n, addr, err := sock.RecvFrom(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "recv failed: %v\n", err)
			continue
		}
		if err := sock.SendTo(msg, addr); err != nil {
			fmt.Fprintf(os.Stderr, "send failed: %v\n", err)
		}
		fmt.Printf("client sent: %q\n", buf[:n])
	}
}
