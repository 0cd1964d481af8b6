// Package gateway fetches service details from the National Rail
// OpenLDBSVWS SOAP endpoint.
package gateway

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/railquery/railquery/pkg/config"
	"github.com/railquery/railquery/pkg/ldbsv"
	"github.com/railquery/railquery/pkg/xmldom"
)

const serviceDetailsEnvelope = `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:typ="http://thalesgroup.com/RTTI/2013-11-28/Token/types" xmlns:ldb="http://thalesgroup.com/RTTI/2021-11-01/ldbsv/"><soapenv:Header><typ:AccessToken><typ:TokenValue>%s</typ:TokenValue></typ:AccessToken></soapenv:Header><soapenv:Body><ldb:GetServiceDetailsByRIDRequest><ldb:rid>%s</ldb:rid></ldb:GetServiceDetailsByRIDRequest></soapenv:Body></soapenv:Envelope>`

type Client struct {
	Endpoint    string
	AccessToken string

	HTTPClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		Endpoint:    cfg.Endpoint,
		AccessToken: cfg.AccessToken,

		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ServiceDetails fetches and parses the full schedule record for the
// service with the given RID. Transient upstream failures are retried
// with exponential backoff; parse failures are returned as the typed
// errors of the ldbsv package.
func (c *Client) ServiceDetails(ctx context.Context, rid string) (*ldbsv.ServiceDetails, error) {
	payload := fmt.Sprintf(serviceDetailsEnvelope, xmlEscape(c.AccessToken), xmlEscape(rid))

	var responseBody []byte

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)

	err := backoff.Retry(func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader([]byte(payload)))
		if err != nil {
			return backoff.Permanent(err)
		}

		request.Header.Set("Content-Type", "text/xml")
		request.Header.Set("Accept", "text/xml")

		response, err := c.HTTPClient.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		body, err := io.ReadAll(response.Body)
		if err != nil {
			return err
		}

		if response.StatusCode != http.StatusOK {
			err := fmt.Errorf("gateway responded with status %d", response.StatusCode)

			// Client errors won't get better with retries.
			if response.StatusCode >= 400 && response.StatusCode < 500 && response.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}

			log.Debug().Int("status", response.StatusCode).Str("rid", rid).Msg("Retrying gateway request")

			return err
		}

		responseBody = body

		return nil
	}, retryBackoff)
	if err != nil {
		return nil, err
	}

	document, err := xmldom.Parse(responseBody)
	if err != nil {
		return nil, err
	}

	return ldbsv.ParseServiceDetails(document)
}

func xmlEscape(text string) string {
	var escaped bytes.Buffer
	xml.EscapeText(&escaped, []byte(text))

	return escaped.String()
}
