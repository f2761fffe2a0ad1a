package domain

import (
	"maps"
	"slices"
)

// StationDomain identifies an independent station enumeration.
type StationDomain string

const (
	DomainRadiation StationDomain = "radiation"
	DomainTide      StationDomain = "tide"
)

// Supported language codes. Anything else falls back to English for lookups.
const (
	LangEN = "en"
	LangTC = "tc"
	LangSC = "sc"
)

// DefaultPlace is the reference station used when a requested place has no
// direct observation.
const DefaultPlace = "Hong Kong Observatory"

// radiationStations maps station codes to display names for the RYES
// radiation report, per language.
var radiationStations = map[string]map[string]string{
	LangEN: {
		"CCH": "Cheung Chau",
		"CLK": "Chek Lap Kok",
		"EPC": "Ping Chau",
		"HKO": "Hong Kong Observatory",
		"HKP": "Hong Kong Park",
		"HKS": "Wong Chuk Hang",
		"HPV": "Happy Valley",
		"JKB": "Tseung Kwan O",
		"KAT": "Kat O",
		"KLT": "Kowloon City",
		"KP":  "Kings Park",
		"KTG": "Kwun Tong",
		"LFS": "Lau Fau Shan",
		"PLC": "Tai Mei Tuk",
		"SE1": "Kai Tak Runway Park",
		"SEK": "Shek Kong",
		"SHA": "Sha Tin",
		"SKG": "Sai Kung",
		"SKW": "Shau Kei Wan",
		"SSP": "Sham Shui Po",
		"STK": "Sha Tau Kok",
		"STY": "Stanley",
		"SWH": "Sai Wan Ho",
		"TAP": "Tap Mun",
		"TBT": "Tsim Bei Tsui",
		"TKL": "Ta Kwu Ling",
		"TUN": "Tuen Mun",
		"TW":  "Tsuen Wan Shing Mun Valley",
		"TWN": "Tsuen Wan Ho Koon",
		"TY1": "Tsing Yi",
		"WTS": "Wong Tai Sin",
		"YCT": "Tai Po",
		"YLP": "Yuen Long Park",
		"YNF": "Yuen Ng Fan",
	},
	LangTC: {
		"CCH": "長洲",
		"CLK": "赤鱲角",
		"EPC": "平洲",
		"HKO": "香港天文台",
		"HKP": "香港公園",
		"HKS": "黃竹坑",
		"HPV": "跑馬地",
		"JKB": "將軍澳",
		"KAT": "吉澳",
		"KLT": "九龍城",
		"KP":  "京士柏",
		"KTG": "觀塘",
		"LFS": "流浮山",
		"PLC": "大美督",
		"SE1": "啟德跑道公園",
		"SEK": "石崗",
		"SHA": "沙田",
		"SKG": "西貢",
		"SKW": "筲箕灣",
		"SSP": "深水埗",
		"STK": "沙頭角",
		"STY": "赤柱",
		"SWH": "西灣河",
		"TAP": "塔門",
		"TBT": "尖鼻咀",
		"TKL": "打鼓嶺",
		"TUN": "屯門",
		"TW":  "荃灣城門谷",
		"TWN": "荃灣可觀",
		"TY1": "青衣",
		"WTS": "黃大仙",
		"YCT": "大埔",
		"YLP": "元朗公園",
		"YNF": "元五墳",
	},
	LangSC: {
		"CCH": "长洲",
		"CLK": "赤鱲角",
		"EPC": "平洲",
		"HKO": "香港天文台",
		"HKP": "香港公园",
		"HKS": "黄竹坑",
		"HPV": "跑马地",
		"JKB": "将军澳",
		"KAT": "吉澳",
		"KLT": "九龙城",
		"KP":  "京士柏",
		"KTG": "观塘",
		"LFS": "流浮山",
		"PLC": "大美督",
		"SE1": "启德跑道公园",
		"SEK": "石岗",
		"SHA": "沙田",
		"SKG": "西贡",
		"SKW": "筲箕湾",
		"SSP": "深水埗",
		"STK": "沙头角",
		"STY": "赤柱",
		"SWH": "西湾河",
		"TAP": "塔门",
		"TBT": "尖鼻咀",
		"TKL": "打鼓岭",
		"TUN": "屯门",
		"TW":  "荃湾城门谷",
		"TWN": "荃湾可观",
		"TY1": "青衣",
		"WTS": "黄大仙",
		"YCT": "大埔",
		"YLP": "元朗公园",
		"YNF": "元五坟",
	},
}

// tideStations maps station codes to display names for the HHOT/HLT tide
// datasets, per language.
var tideStations = map[string]map[string]string{
	LangEN: {
		"CCH": "Cheung Chau",
		"CLK": "Chek Lap Kok",
		"CMW": "Chi Ma Wan",
		"KCT": "Kwai Chung",
		"KLW": "Ko Lau Wan",
		"LOP": "Lok On Pai",
		"MWC": "Ma Wan",
		"QUB": "Quarry Bay",
		"SPW": "Shek Pik",
		"TAO": "Tai O",
		"TBT": "Tsim Bei Tsui",
		"TMW": "Tai Miu Wan",
		"TPK": "Tai Po Kau",
		"WAG": "Waglan Island",
	},
	LangTC: {
		"CCH": "長洲",
		"CLK": "赤鱲角",
		"CMW": "芝麻灣",
		"KCT": "葵涌",
		"KLW": "高流灣",
		"LOP": "樂安排",
		"MWC": "馬灣",
		"QUB": "鰂魚涌",
		"SPW": "石壁",
		"TAO": "大澳",
		"TBT": "尖鼻咀",
		"TMW": "大廟灣",
		"TPK": "大埔滘",
		"WAG": "橫瀾島",
	},
	LangSC: {
		"CCH": "长洲",
		"CLK": "赤鱲角",
		"CMW": "芝麻湾",
		"KCT": "葵涌",
		"KLW": "高流湾",
		"LOP": "乐安排",
		"MWC": "马湾",
		"QUB": "鲗鱼涌",
		"SPW": "石壁",
		"TAO": "大澳",
		"TBT": "尖鼻咀",
		"TMW": "大庙湾",
		"TPK": "大埔滘",
		"WAG": "横澜岛",
	},
}

var stationTables = map[StationDomain]map[string]map[string]string{
	DomainRadiation: radiationStations,
	DomainTide:      tideStations,
}

// StationNames returns a copy of the code-to-name table for the given domain
// and language. An unrecognized language falls back to English.
func StationNames(domain StationDomain, lang string) map[string]string {
	tables := stationTables[domain]
	if tables == nil {
		return nil
	}
	table, ok := tables[lang]
	if !ok {
		table = tables[LangEN]
	}
	return maps.Clone(table)
}

// StationCodes returns the sorted station codes for the given domain.
func StationCodes(domain StationDomain) []string {
	tables := stationTables[domain]
	if tables == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(tables[LangEN]))
}
