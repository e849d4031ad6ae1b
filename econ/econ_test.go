package econ

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(1e-12, 1e-9)

func TestConfig_Route(t *testing.T) {
	testCases := []struct {
		desc     string
		cfg      Config
		originP  float64
		destP    float64
		distance float64
		want     Estimate
	}{
		{
			// Under the distance floor: denominator is 500^2. The market
			// fare (54) is below the capped fare (78).
			desc:     "short route",
			cfg:      Default(),
			originP:  2e6,
			destP:    5e5,
			distance: 400,
			want: Estimate{
				Ridership:                 300000,
				OperatingCostPerPassenger: 28,
				ProposedFare:              54,
				MaxFare:                   78,
				Fare:                      54,
				ProfitPerPassenger:        26,
				TotalProfit:               26 * 300000,
			},
		},
		{
			// Above the floor, the market fare (135) exceeds the capped fare
			// (70 + 50).
			desc:     "capped fare",
			cfg:      Default(),
			originP:  1e6,
			destP:    1e6,
			distance: 1000,
			want: Estimate{
				Ridership:                 75000,
				OperatingCostPerPassenger: 70,
				ProposedFare:              135,
				MaxFare:                   120,
				Fare:                      120,
				ProfitPerPassenger:        50,
				TotalProfit:               50 * 75000,
			},
		},
		{
			desc:     "self pair",
			cfg:      Default(),
			originP:  1e6,
			destP:    1e6,
			distance: 0,
			want: Estimate{
				Ridership: 300000,
				MaxFare:   50,
			},
		},
		{
			desc:     "empty city",
			cfg:      Default(),
			originP:  0,
			destP:    1e6,
			distance: 600,
			want: Estimate{
				OperatingCostPerPassenger: 42,
				ProposedFare:              81,
				MaxFare:                   92,
				Fare:                      81,
				ProfitPerPassenger:        39,
			},
		},
		{
			desc: "custom parameters",
			cfg: Config{
				Coeff:                 1,
				Power:                 1,
				OperatingCostPerKm:    1,
				MaxProfitPerPassenger: 10,
				BaseFarePerKm:         2,
				DistanceFloor:         10,
			},
			originP:  2e6,
			destP:    3e6,
			distance: 20,
			want: Estimate{
				Ridership:                 1e6 * 6 / 400,
				OperatingCostPerPassenger: 20,
				ProposedFare:              40,
				MaxFare:                   30,
				Fare:                      30,
				ProfitPerPassenger:        10,
				TotalProfit:               10 * 1e6 * 6 / 400,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := tc.cfg.Route(tc.originP, tc.destP, tc.distance)

			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("Route(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfig_Route_fareCap(t *testing.T) {
	cfg := Default()
	for d := 0.0; d <= 3000; d += 37.5 {
		got := cfg.Route(1e6, 2e6, d)

		if want := math.Min(got.MaxFare, got.ProposedFare); got.Fare != want {
			t.Errorf("Route(%f): want fare %f, got %f", d, want, got.Fare)
		}
		if want := got.Fare - got.OperatingCostPerPassenger; got.ProfitPerPassenger != want {
			t.Errorf("Route(%f): want profit per passenger %f, got %f", d, want, got.ProfitPerPassenger)
		}
		if want := got.ProfitPerPassenger * got.Ridership; got.TotalProfit != want {
			t.Errorf("Route(%f): want total profit %f, got %f", d, want, got.TotalProfit)
		}
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		desc    string
		data    string
		want    Config
		wantErr bool
	}{
		{
			desc: "empty document",
			data: "",
			want: Default(),
		},
		{
			desc: "partial override",
			data: "coeff: 1000\nbase_fare_per_km: 0.2\nexclude_self_pairs: true\n",
			want: Config{
				Coeff:                 1000,
				Power:                 0.8,
				OperatingCostPerKm:    0.07,
				MaxProfitPerPassenger: 50,
				BaseFarePerKm:         0.2,
				DistanceFloor:         500,
				ExcludeSelfPairs:      true,
			},
		},
		{
			desc:    "unknown key",
			data:    "coef: 1000\n",
			wantErr: true,
		},
		{
			desc:    "negative value",
			data:    "power: -1\n",
			wantErr: true,
		},
		{
			desc:    "zero distance floor",
			data:    "distance_floor: 0\n",
			wantErr: true,
		},
		{
			desc:    "not a number",
			data:    "coeff: many\n",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, gotErr := Parse([]byte(tc.data))

			if tc.wantErr && !errors.Is(gotErr, ErrInvalidConfig) {
				t.Errorf("Parse(): want ErrInvalidConfig, got %v", gotErr)
			}
			if !tc.wantErr && gotErr != nil {
				t.Errorf("Parse(): want no error, got %s", gotErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "econ.yaml")
	if err := os.WriteFile(path, []byte("max_profit_per_passenger: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): want no error, got %s", err)
	}
	if got.MaxProfitPerPassenger != 20 || got.Coeff != 75000 {
		t.Errorf("Load(): want overridden profit and default coeff, got %+v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load(): want error on missing file, got nil")
	}
}
