// Command samgo-clientserver demonstrates a virtual stream: the server
// accepts one inbound connection while a client, launched in the same
// process, connects to it and writes a line every few seconds.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-i2p/sam3go/endpoint"
)

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
	stream, err := endpoint.NewVirtualStream()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create stream: %v\n", err)
		os.Exit(1)
	}
	defer stream.Close()

	localDest := stream.GetLocalDest()
	go client(localDest)

	fmt.Println("waiting for an incoming connection...")
	if _, err := stream.Accept(); err != nil {
		fmt.Fprintf(os.Stderr, "accept failed: %v\n", err)
		os.Exit(1)
	}

	buf := make([]byte, 14)
	for {
		if err := stream.ReadExact(buf); err != nil {
			fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
			return
		}
		fmt.Printf("client sent: %q\n", buf)
	}
}
