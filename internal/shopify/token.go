package shopify

import (
	"context"
	"fmt"
)

// tokenStore is the slice of the datastore the token provider needs.
type tokenStore interface {
	GetShopToken(ctx context.Context, shopDomain string) (string, error)
}

// StoreTokenProvider resolves Admin API tokens from the shops table.
type StoreTokenProvider struct {
	store tokenStore
}

// NewStoreTokenProvider creates a TokenProvider backed by the given
// store.
func NewStoreTokenProvider(store tokenStore) *StoreTokenProvider {
	return &StoreTokenProvider{store: store}
}

// Token returns the stored offline access token for a shop.
func (p *StoreTokenProvider) Token(
	ctx context.Context,
	shopDomain string,
) (string, error) {
	token, err := p.store.GetShopToken(ctx, shopDomain)
	if err != nil {
		return "", fmt.Errorf("loading token for %s: %w", shopDomain, err)
	}
	return token, nil
}
