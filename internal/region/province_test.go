package region

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"empty", "", Unknown},
		{"province verbatim", "四川省宜宾市", "四川"},
		{"municipality verbatim", "北京市朝阳区", "北京"},
		{"exact city after suffix strip", "毕节市", "贵州"},
		{"city substring fallback", "宜宾市翠屏区", "四川"},
		{"autonomous prefecture", "延边朝鲜族自治州", "吉林"},
		{"league suffix", "锡林郭勒盟", "内蒙古"},
		{"unknown place", "不存在的地方", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.location); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

// 吉林 is both a province and a city; the province fast path must win.
func TestResolveJilinAmbiguity(t *testing.T) {
	if got := Resolve("吉林市"); got != "吉林" {
		t.Errorf("Resolve(吉林市) = %q, want 吉林", got)
	}
}

func TestCityTableOrderIsStable(t *testing.T) {
	if cityTable[0].city != "北京" {
		t.Errorf("first table entry = %q, want 北京", cityTable[0].city)
	}
	// The substring path depends on table order, not map iteration.
	first, second := Resolve("宜宾市翠屏区"), Resolve("宜宾市翠屏区")
	if first != second {
		t.Errorf("Resolve not deterministic: %q then %q", first, second)
	}
}
