package main

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skarimo/downwatch/internal/domain"
	"github.com/skarimo/downwatch/internal/probe"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a site URL to check (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	chk := probe.NewHTTPChecker(10*time.Second, zap.NewNop())
	out := chk.CheckOne(context.Background(), domain.Target{URL: raw})
	if out.Up {
		fmt.Printf("UP   %s (%d, %.0f ms)\n", raw, out.StatusCode, out.LatencyMS)
	} else {
		fmt.Printf("DOWN %s (%s)\n", raw, out.Message)
	}
}
