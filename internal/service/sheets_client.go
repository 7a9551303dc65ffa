package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"banyan-data/internal/config"
)

// SheetsClient talks to the Google Sheets values API for one spreadsheet.
type SheetsClient struct {
	http          *resty.Client
	spreadsheetID string
	logger        *zap.Logger
}

func NewSheetsClient(cfg config.SheetsConfig, logger *zap.Logger) *SheetsClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSecs)*time.Second).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	return &SheetsClient{
		http:          client,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}
}

type valueRange struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

// UpdateValues overwrites tab contents starting at A1 with raw values.
func (c *SheetsClient) UpdateValues(ctx context.Context, tab string, values [][]interface{}) error {
	rangeRef := tab + "!A1"

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("valueInputOption", "RAW").
		SetBody(valueRange{
			Range:          rangeRef,
			MajorDimension: "ROWS",
			Values:         values,
		}).
		Put(fmt.Sprintf("/v4/spreadsheets/%s/values/%s", c.spreadsheetID, url.PathEscape(rangeRef)))
	if err != nil {
		return fmt.Errorf("sheets update request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sheets update failed: %s: %s", resp.Status(), resp.String())
	}

	c.logger.Debug("Sheet tab updated",
		zap.String("tab", tab),
		zap.Int("rows", len(values)))
	return nil
}
