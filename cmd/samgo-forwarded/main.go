// Command samgo-forwarded demonstrates STREAM FORWARD: incoming virtual
// stream connections are delivered to a plain local TCP listener instead of
// a second SAM data connection.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-i2p/sam3go/endpoint"
)

const forwardPort = 8888

func client(dest string) {
	time.Sleep(2 * time.Second)

	stream, err := endpoint.NewVirtualStream()
	if err != nil {
		fmt.Fprintf(os.Stderr, "client: failed to create stream: %v\n", err)
		return
	}
	defer stream.Close()

	if err := stream.Connect(dest); err != nil {
		fmt.Fprintf(os.Stderr, "client: failed to connect: %v\n", err)
		return
	}

	for {
		if err := stream.Write([]byte("Hello, world!\n")); err != nil {
			fmt.Fprintf(os.Stderr, "client: write failed: %v\n", err)
			return
		}
		time.Sleep(5 * time.Second)
	}
}

func main() {
	control, err := endpoint.NewVirtualStream()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create stream: %v\n", err)
		os.Exit(1)
	}
	defer control.Close()

	if err := control.Forward(forwardPort, false); err != nil {
		fmt.Fprintf(os.Stderr, "failed to forward stream: %v\n", err)
		os.Exit(1)
	}

	localDest := control.GetLocalDest()
	go client(localDest)

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", forwardPort))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to listen: %v\n", err)
		os.Exit(1)
	}
	defer listener.Close()

	conn, err := listener.Accept()
	if err != nil {
		fmt.Fprintf(os.Stderr, "accept failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// The first line the bridge writes on a forwarded connection is always
	// the remote peer's destination.
	dest, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read remote destination: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("accepted a stream! remote peer: %s", dest)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fmt.Printf("client sent: %s", line)
	}
}
