package httptool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reserva_bot/config"
	"reserva_bot/pkg/tools"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	slowRequestThreshold = 800 * time.Millisecond
)

// HTTPClient is a thin JSON client bound to one sidecar base address
type HTTPClient struct {
	hc         http.Client
	baseAddr   string
	clientName string
}

func NewHTTPClient(baseAddr, clientName string, timeout time.Duration, transport *http.Transport) *HTTPClient {
	return &HTTPClient{
		baseAddr: "http://" + baseAddr,
		hc: http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		clientName: clientName,
	}
}

func (hc *HTTPClient) PostJSONWithContext(ctx context.Context, url string, obj interface{}) ([]byte, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return hc.fetchWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
}

func (hc *HTTPClient) GetWithContext(ctx context.Context, url string) ([]byte, error) {
	return hc.fetchWithContext(ctx, http.MethodGet, url, nil)
}

func (hc *HTTPClient) fetchWithContext(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	targetURL := fmt.Sprintf("%v%v", hc.baseAddr, url)

	logRequest := config.GetInstance().GetBool(config.ApplicationLogRequest)
	now := time.Now()

	if logRequest && body != nil {
		b, _ := io.ReadAll(body)

		body = bytes.NewReader(b)
		log.Debugf("Sending %v request to %v", method, targetURL)
		log.Debugf("Body = %v", string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, targetURL, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	resp, err := hc.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request to %v failed", hc.clientName, targetURL)
	}

	return hc.readResponse(resp, req, now)
}

func (hc *HTTPClient) readResponse(resp *http.Response, req *http.Request, startTime time.Time) ([]byte, error) {
	defer tools.ErrorWithPrintContext(resp.Body.Close, "close response body")

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if config.GetInstance().GetBool(config.ApplicationLogRequest) {
		log.Debugf("Got response from %v %v, status code = %d, body = %v took = %v",
			req.Method, req.URL, resp.StatusCode, string(bodyBytes), time.Since(startTime))
	}
	if time.Since(startTime) > slowRequestThreshold {
		log.Infof("TimeConsuming: from %v %v, status code = %d took = %v",
			req.Method, req.URL, resp.StatusCode, time.Since(startTime))
	}

	if resp.StatusCode/100 != 2 {
		return bodyBytes, errors.Errorf("%s request to %v %v failed with status code %d response:%s",
			hc.clientName, req.Method, req.URL, resp.StatusCode, bodyBytes)
	}
	return bodyBytes, nil
}
