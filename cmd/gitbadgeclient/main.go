// Package main implements very simple http client that can be used for testing the gitbadge server.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
)

var (
	serverAddr = flag.String("s", "http://localhost:3000", "The server address with protocol")
	repo       = flag.String("r", "golang/go", "Repository in owner/name form")
	limit      = flag.String("n", "10", `Contributor limit: 1-100 or "all"`)
	style      = flag.String("style", "horizontal", "Badge style: horizontal or grid")
	theme      = flag.String("theme", "light", "Badge theme: light or dark")
	out        = flag.String("o", "badge.svg", "Output file, - for stdout")
)

func main() {
	flag.Parse()

	q := url.Values{}
	q.Set("repo", *repo)
	q.Set("limit", *limit)
	q.Set("style", *style)
	q.Set("theme", *theme)

	resp, err := http.Get(*serverAddr + "/badge?" + q.Encode())
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("reading response failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("server response status %d: %s", resp.StatusCode, body)
	}

	if *out == "-" {
		fmt.Println(string(body))
		return
	}
	if err := os.WriteFile(*out, body, 0644); err != nil {
		log.Fatalf("writing %s failed: %v", *out, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(body))
}
