package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/routes"
)

const submitTimeout = 30 * time.Second

// TokenSource yields the current bearer token, typically the session
// store's ID token.
type TokenSource func() string

// HTTPSubmitter posts completed drafts to the listings endpoint.
type HTTPSubmitter struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewHTTPSubmitter(baseURL string, token TokenSource) *HTTPSubmitter {
	return &HTTPSubmitter{
		baseURL: baseURL,
		http:    &http.Client{},
		token:   token,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, form *Form) error {
	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	images := make([]dtos.ListingImageUpload, 0, len(form.Images))
	for _, img := range form.Images {
		images = append(images, dtos.ListingImageUpload{
			Name:     img.Name,
			MimeType: img.MimeType,
			Data:     img.Data,
		})
	}

	req := dtos.CreateListingRequest{
		Title:         form.Title,
		Description:   form.Description,
		Type:          form.Type,
		Status:        form.Status,
		Price:         form.Price,
		Bedrooms:      form.Bedrooms,
		Bathrooms:     form.Bathrooms,
		SquareFeet:    form.SquareFeet,
		Address:       form.Address,
		City:          form.City,
		State:         form.State,
		ZipCode:       form.ZipCode,
		Amenities:     form.Amenities,
		Images:        images,
		TermsAccepted: form.TermsAccepted,
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+routes.Listings, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token := s.token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("listing submission rejected: %s: %s", resp.Status, bytes.TrimSpace(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
