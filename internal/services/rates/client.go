package rates

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "rates")

var satoshisPerBTC = decimal.New(1, 8)

// Converter turns a fiat amount into its satoshi equivalent.
type Converter interface {
	Satoshis(ctx context.Context, amount float64, currency string) (int64, error)
}

type client struct {
	rest *resty.Client
}

// New returns a Converter backed by a blockchain.info compatible
// "tobtc" endpoint at baseURL.
func New(baseURL string) Converter {
	return &client{rest: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))}
}

func (c *client) Satoshis(ctx context.Context, amount float64, currency string) (int64, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"currency": strings.ToUpper(currency),
			"value":    decimal.NewFromFloat(amount).String(),
		}).
		Get("/tobtc")
	if err != nil {
		return 0, fmt.Errorf("rate lookup %s: %w", currency, err)
	}
	if resp.IsError() {
		logger.WithFields(logrus.Fields{
			"status":   resp.StatusCode(),
			"currency": currency,
		}).Debug("rate source rejected request")
		return 0, fmt.Errorf("rate lookup %s: status %d", currency, resp.StatusCode())
	}

	btc, err := decimal.NewFromString(strings.TrimSpace(resp.String()))
	if err != nil {
		return 0, fmt.Errorf("rate lookup %s: unexpected body %q", currency, resp.String())
	}
	return btc.Mul(satoshisPerBTC).Round(0).IntPart(), nil
}
