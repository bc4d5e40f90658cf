package domain

// AuspiciousTimings are the favourable windows of a day.
type AuspiciousTimings struct {
	Abhijit string `json:"abhijit"`
	Amrit   string `json:"amrit"`
	Brahma  string `json:"brahma"`
}

// InauspiciousTimings are the windows to avoid, keyed by weekday.
type InauspiciousTimings struct {
	Rahu      string `json:"rahu"`
	Yamaganda string `json:"yamaganda"`
	Gulika    string `json:"gulika"`
}

// Panchangam is the daily Hindu calendar record. It is derived from the
// date alone, so the same date always yields an identical value.
type Panchangam struct {
	Date                string              `json:"date"`
	Tithi               string              `json:"tithi"`
	Nakshatra           string              `json:"nakshatra"`
	Yoga                string              `json:"yoga"`
	Karana              string              `json:"karana"`
	Paksha              string              `json:"paksha"`
	Month               string              `json:"month"`
	AuspiciousTimings   AuspiciousTimings   `json:"auspicious_timings"`
	InauspiciousTimings InauspiciousTimings `json:"inauspicious_timings"`
	Sunrise             string              `json:"sunrise"`
	Sunset              string              `json:"sunset"`
	MoonRise            string              `json:"moon_rise"`
}

// GitaSloka is a Bhagavad Gita verse rendered in one language.
type GitaSloka struct {
	Chapter         int    `json:"chapter"`
	Verse           int    `json:"verse"`
	Sanskrit        string `json:"sanskrit"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Meaning         string `json:"meaning"`
}
