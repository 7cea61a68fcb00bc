package handlers

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const downloadTimeout = 30 * time.Second

var secureHTTPClient = &http.Client{
	Timeout: downloadTimeout,
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
}

// NewFileDownloader fetches uploads through the Telegram file API over HTTPS.
func NewFileDownloader(bot *tgbotapi.BotAPI) FileFetcher {
	return func(ctx context.Context, fileID string, maxSize int64) ([]byte, error) {
		file, err := bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
		if err != nil {
			return nil, fmt.Errorf("get file info: %w", err)
		}

		if int64(file.FileSize) > maxSize {
			return nil, fmt.Errorf("%w: %d bytes (max %d)", errFileTooLarge, file.FileSize, maxSize)
		}

		fileURL := file.Link(bot.Token)
		parsedURL, err := url.Parse(fileURL)
		if err != nil {
			return nil, fmt.Errorf("invalid file URL: %w", err)
		}
		if parsedURL.Scheme != "https" {
			return nil, fmt.Errorf("insecure URL scheme: %s (expected https)", parsedURL.Scheme)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := secureHTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("download file: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		// Read one byte past the limit to notice a lying size header.
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if int64(len(data)) > maxSize {
			return nil, fmt.Errorf("%w: more than %d bytes", errFileTooLarge, maxSize)
		}

		return data, nil
	}
}
