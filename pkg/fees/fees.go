// Package fees estimates the on-chain cost of creating a token.
//
// The amounts are advisory: actual network fees are paid by the user's wallet
// at mint time. Devnet operations are free.
package fees

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "github.com/memeforge/memeforge/pkg/app/errors"
	"github.com/memeforge/memeforge/pkg/token"
)

// Schedule holds the per-network fee amounts, in SOL, as decimal strings.
// Values can be overridden from configuration; defaults track current
// mainnet costs.
type Schedule struct {
	MainnetCreationFee string `mapstructure:"mainnet_creation_fee" default:"0.002" validate:"required"`
	MainnetMetadataFee string `mapstructure:"mainnet_metadata_fee" default:"0.001" validate:"required"`
}

// Estimate is the external JSON shape of a fee estimate.
type Estimate struct {
	Network     string `json:"network"`
	CreationFee string `json:"creationFee"`
	MetadataFee string `json:"metadataFee"`
	TotalFee    string `json:"totalFee"`
	Currency    string `json:"currency"`
}

// Estimator computes fee estimates from a Schedule.
type Estimator struct {
	creation decimal.Decimal
	metadata decimal.Decimal
}

// NewEstimator builds an Estimator, filling unset Schedule fields with
// defaults and validating the amounts parse as decimals.
func NewEstimator(sched *Schedule) (*Estimator, error) {
	if sched == nil {
		sched = &Schedule{}
	}
	if err := defaults.Set(sched); err != nil {
		return nil, fmt.Errorf("failed to apply fee schedule defaults: %w", err)
	}
	if err := validator.New().Struct(sched); err != nil {
		return nil, fmt.Errorf("invalid fee schedule: %w", err)
	}

	creation, err := decimal.NewFromString(sched.MainnetCreationFee)
	if err != nil {
		return nil, fmt.Errorf("invalid mainnet creation fee %q: %w", sched.MainnetCreationFee, err)
	}
	metadata, err := decimal.NewFromString(sched.MainnetMetadataFee)
	if err != nil {
		return nil, fmt.Errorf("invalid mainnet metadata fee %q: %w", sched.MainnetMetadataFee, err)
	}

	return &Estimator{
		creation: creation,
		metadata: metadata,
	}, nil
}

// ForNetwork returns the fee estimate for the given network. Devnet is free.
func (e *Estimator) ForNetwork(network string) (*Estimate, error) {
	switch network {
	case token.NetworkDevnet:
		zero := decimal.Zero.String()
		return &Estimate{
			Network:     network,
			CreationFee: zero,
			MetadataFee: zero,
			TotalFee:    zero,
			Currency:    "SOL",
		}, nil
	case token.NetworkMainnet:
		return &Estimate{
			Network:     network,
			CreationFee: e.creation.String(),
			MetadataFee: e.metadata.String(),
			TotalFee:    e.creation.Add(e.metadata).String(),
			Currency:    "SOL",
		}, nil
	default:
		return nil, apperrors.BadRequestError(nil, "network must be devnet or mainnet")
	}
}
