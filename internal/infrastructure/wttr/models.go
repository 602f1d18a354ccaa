package wttr

// Report is the subset of the wttr.in j1 payload this service reads.
type Report struct {
	CurrentCondition []Condition `json:"current_condition"`
}

// Condition describes the weather at one observation. wttr.in serves the
// numeric fields as strings.
type Condition struct {
	TempC       string        `json:"temp_C"`
	FeelsLikeC  string        `json:"FeelsLikeC"`
	Humidity    string        `json:"humidity"`
	WeatherDesc []Description `json:"weatherDesc"`
}

// Description is a human-readable condition label.
type Description struct {
	Value string `json:"value"`
}

// Text returns the first condition label, or an empty string.
func (c Condition) Text() string {
	if len(c.WeatherDesc) == 0 {
		return ""
	}
	return c.WeatherDesc[0].Value
}
