package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"speech-x-text/infrastructure/http/server"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BaseURL string        `env:"VIEWER_BASE_URL,default=http://localhost:8000"`
	Timeout time.Duration `env:"VIEWER_TIMEOUT,default=5s"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Fetch the stored messages
	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()
	messages, err := fetchMessages(ctx, http.DefaultClient, config.BaseURL)
	if err != nil {
		log.Fatalf("Failed to list messages: %v", err)
	}

	// 3. Render
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" %d message(s) on %s ", len(messages), config.BaseURL)))
	renderMessages(os.Stdout, messages)
}

func fetchMessages(ctx context.Context, client *http.Client, baseURL string) ([]server.MessageResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/messages", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if err = json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, body.Error)
	}
	var messages []server.MessageResponse
	if err = json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return messages, nil
}

func renderMessages(w io.Writer, messages []server.MessageResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Text", "Created At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, message := range messages {
		created := message.CreatedAt
		if at, err := server.ParseCreatedAt(message.CreatedAt); err == nil {
			created = at.Local().Format("2006-01-02 15:04:05")
		}
		table.Append([]string{strconv.Itoa(message.ID), message.Text, created})
	}
	table.Render()
}
