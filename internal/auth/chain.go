package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// Validator turns an access token into the calling actor.
type Validator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

// Chain accepts a token if any of its validators does, tried in order.
type Chain []Validator

// NewChain combines validators, skipping nil ones.
func NewChain(vs ...Validator) Chain {
	c := make(Chain, 0, len(vs))
	for _, v := range vs {
		if v != nil {
			c = append(c, v)
		}
	}
	return c
}

func (c Chain) ValidateToken(ctx context.Context, token string) (domain.Actor, error) {
	if len(c) == 0 {
		return domain.Actor{}, fmt.Errorf("no token validators configured")
	}

	var errs []error
	for _, v := range c {
		a, err := v.ValidateToken(ctx, token)
		if err == nil {
			return a, nil
		}
		errs = append(errs, err)
	}
	return domain.Actor{}, errors.Join(errs...)
}
