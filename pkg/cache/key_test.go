package cache

import "testing"

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "single coin lookup",
			key:  Key{Operation: "coin", Params: []string{"BTC", "USD"}},
			want: "lcw:coin:BTC:USD",
		},
		{
			name: "list with pagination",
			key:  Key{Operation: "list", Params: []string{"EUR", "20", "40"}},
			want: "lcw:list:EUR:20:40",
		},
		{
			name: "search",
			key:  Key{Operation: "search", Params: []string{"bitcoin", "USD", "10"}},
			want: "lcw:search:bitcoin:USD:10",
		},
		{
			name: "overview has one param",
			key:  Key{Operation: "overview", Params: []string{"USD"}},
			want: "lcw:overview:USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := Key{Operation: "coin", Params: []string{"ETH", "USD"}}
	b := Key{Operation: "coin", Params: []string{"ETH", "USD"}}

	if a.String() != b.String() {
		t.Errorf("identical keys rendered differently: %q vs %q", a.String(), b.String())
	}
}

func TestKey_DistinctRequestsNeverCollide(t *testing.T) {
	keys := []Key{
		{Operation: "coin", Params: []string{"BTC", "USD"}},
		{Operation: "coin", Params: []string{"BTC", "EUR"}},
		{Operation: "coin", Params: []string{"ETH", "USD"}},
		{Operation: "list", Params: []string{"USD", "20", "0"}},
		{Operation: "list", Params: []string{"USD", "20", "20"}},
		{Operation: "search", Params: []string{"btc", "USD", "10"}},
		{Operation: "overview", Params: []string{"USD"}},
	}

	seen := make(map[string]int)
	for i, k := range keys {
		s := k.String()
		if prev, ok := seen[s]; ok {
			t.Errorf("keys %d and %d collide on %q", prev, i, s)
		}
		seen[s] = i
	}
}
