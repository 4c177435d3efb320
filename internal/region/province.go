// Package region resolves free-text destination strings to one of the 31
// top-level provinces. The city table is ordered so that substring
// fallbacks resolve deterministically: first entry in table order wins.
package region

import "strings"

// Unknown is returned when a location cannot be placed in any province.
const Unknown = "未知"

// Provinces lists the top-level provinces and municipalities probed by
// the verbatim-containment fast path, in scan order.
var Provinces = []string{
	"北京", "天津", "上海", "重庆", "河北", "山西", "辽宁", "吉林", "黑龙江", "江苏", "浙江", "安徽", "福建", "江西",
	"山东", "河南", "湖北", "湖南", "广东", "海南", "四川", "贵州", "云南", "陕西", "甘肃", "青海", "内蒙古", "广西", "西藏",
	"宁夏", "新疆",
}

var adminSuffixes = []string{"自治区", "自治州", "地区", "市", "省", "盟", "州"}

// Resolve maps a location string to a province name.
//
// Resolution order: (a) any province name contained verbatim; (b) exact
// city-table hit after stripping one trailing administrative suffix;
// (c) first city key contained anywhere in the location; (d) Unknown.
func Resolve(location string) string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return Unknown
	}
	for _, prov := range Provinces {
		if strings.Contains(loc, prov) {
			return prov
		}
	}
	stripped := stripAdminSuffix(loc)
	if prov, ok := cityIndex[stripped]; ok {
		return prov
	}
	for _, e := range cityTable {
		if strings.Contains(loc, e.city) {
			return e.prov
		}
	}
	return Unknown
}

func stripAdminSuffix(loc string) string {
	for _, suf := range adminSuffixes {
		if strings.HasSuffix(loc, suf) {
			return strings.TrimSuffix(loc, suf)
		}
	}
	return loc
}
