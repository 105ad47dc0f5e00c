// Package none provides a metadata source that never finds anything, so
// every series keeps the default portrait.
package none

import (
	"context"

	"github.com/vrsandeep/mango-marks/internal/models"
)

type NoneProvider struct{}

func New() *NoneProvider {
	return &NoneProvider{}
}

func (p *NoneProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "none",
		Name: "No lookups",
	}
}

func (p *NoneProvider) Search(context.Context, string) ([]models.SearchResult, error) {
	return nil, nil
}
