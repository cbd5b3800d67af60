package fee_test

import (
	"testing"

	"seatsafe/config"
	"seatsafe/shared/constant"
	"seatsafe/shared/fee"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "already two decimals",
			input:    10.25,
			expected: 10.25,
		},
		{
			name:     "rounds half up",
			input:    2.675 * 2, // 5.35 exactly in decimal, inexact in binary
			expected: 5.35,
		},
		{
			name:     "rounds down below half",
			input:    1.234,
			expected: 1.23,
		},
		{
			name:     "rounds up above half",
			input:    1.236,
			expected: 1.24,
		},
		{
			name:     "exact half cent rounds up",
			input:    0.125,
			expected: 0.13,
		},
		{
			name:     "zero",
			input:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fee.Round2(tt.input); got != tt.expected {
				t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPayout(t *testing.T) {
	tests := []struct {
		name        string
		gross       float64
		rate        float64
		expectedFee float64
		expectedNet float64
	}{
		{
			name:        "flat three percent on round amount",
			gross:       100,
			rate:        0.03,
			expectedFee: 3,
			expectedNet: 97,
		},
		{
			name:        "fee rounds to the cent",
			gross:       33.33,
			rate:        0.03,
			expectedFee: 1.0, // 0.9999 rounds up
			expectedNet: 32.33,
		},
		{
			name:        "small amount",
			gross:       0.5,
			rate:        0.03,
			expectedFee: 0.02, // 0.015 rounds up
			expectedNet: 0.48,
		},
		{
			name:        "zero rate",
			gross:       250,
			rate:        0,
			expectedFee: 0,
			expectedNet: 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fee.Payout(tt.gross, tt.rate)

			if got.Fee != tt.expectedFee {
				t.Errorf("expected fee %v, got %v", tt.expectedFee, got.Fee)
			}

			if got.Net != tt.expectedNet {
				t.Errorf("expected net %v, got %v", tt.expectedNet, got.Net)
			}

			// the split must reassemble exactly
			if got.Fee+got.Net != got.Gross {
				t.Errorf("fee %v + net %v != gross %v", got.Fee, got.Net, got.Gross)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name        string
		price       float64
		rate        float64
		expectedFee float64
		expectedNet float64
	}{
		{
			name:        "free tier rate",
			price:       120,
			rate:        0.03,
			expectedFee: 3.6,
			expectedNet: 116.4,
		},
		{
			name:        "professional tier rate",
			price:       120,
			rate:        0.025,
			expectedFee: 3,
			expectedNet: 117,
		},
		{
			name:        "teams tier rate",
			price:       120,
			rate:        0.0225,
			expectedFee: 2.7,
			expectedNet: 117.3,
		},
		{
			name:        "odd price keeps the split exact",
			price:       79.99,
			rate:        0.0225,
			expectedFee: 1.8,
			expectedNet: 78.19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fee.Display(tt.price, tt.rate)

			if got.Fee != tt.expectedFee {
				t.Errorf("expected fee %v, got %v", tt.expectedFee, got.Fee)
			}

			if got.Net != tt.expectedNet {
				t.Errorf("expected net %v, got %v", tt.expectedNet, got.Net)
			}

			if got.Fee+got.Net != got.Gross {
				t.Errorf("fee %v + net %v != gross %v", got.Fee, got.Net, got.Gross)
			}
		})
	}
}

func TestDisplayRate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Fees.DisplayRateFree = 0.03
	cfg.Fees.DisplayRateProfessional = 0.025
	cfg.Fees.DisplayRateTeams = 0.0225

	tests := []struct {
		name     string
		tier     string
		expected float64
	}{
		{
			name:     "free tier",
			tier:     constant.TierFree,
			expected: 0.03,
		},
		{
			name:     "professional tier",
			tier:     constant.TierProfessional,
			expected: 0.025,
		},
		{
			name:     "teams tier",
			tier:     constant.TierTeams,
			expected: 0.0225,
		},
		{
			name:     "capitalized tier matches regardless of casing",
			tier:     "Professional",
			expected: 0.025,
		},
		{
			name:     "upper-cased tier matches regardless of casing",
			tier:     "TEAMS",
			expected: 0.0225,
		},
		{
			name:     "unknown tier falls back to free",
			tier:     "enterprise",
			expected: 0.03,
		},
		{
			name:     "empty tier falls back to free",
			tier:     "",
			expected: 0.03,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fee.DisplayRate(cfg, tt.tier); got != tt.expected {
				t.Errorf("DisplayRate(%q) = %v, want %v", tt.tier, got, tt.expected)
			}
		})
	}
}

// Payout fees and display fees are separate settings on purpose: the payout
// cut stays flat even when the tier discount lowers the displayed rate.
func TestPayoutRateIndependentOfTier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Fees.PayoutRate = 0.03
	cfg.Fees.DisplayRateFree = 0.03
	cfg.Fees.DisplayRateProfessional = 0.025
	cfg.Fees.DisplayRateTeams = 0.0225

	payout := fee.Payout(200, cfg.Fees.PayoutRate)
	if payout.Fee != 6 {
		t.Errorf("expected payout fee 6, got %v", payout.Fee)
	}

	display := fee.Display(200, fee.DisplayRate(cfg, constant.TierTeams))
	if display.Fee != 4.5 {
		t.Errorf("expected display fee 4.5, got %v", display.Fee)
	}

	if payout.Fee == display.Fee {
		t.Error("payout fee and teams display fee should differ for the same amount")
	}
}
