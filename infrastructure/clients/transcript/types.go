package transcript

import "encoding/xml"

// Subset of ytInitialPlayerResponse we care about.

type playerResponse struct {
	Captions          *captions          `json:"captions"`
	PlayabilityStatus *playabilityStatus `json:"playabilityStatus"`
}

type playabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type captions struct {
	PlayerCaptionsTracklistRenderer tracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type tracklistRenderer struct {
	CaptionTracks []captionTrack `json:"captionTracks"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	// Kind is "asr" for auto-generated tracks, empty for manual captions.
	Kind string `json:"kind"`
}

// timedText is the caption XML served by the track base URL.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Lines   []timedTextRow `xml:"text"`
}

type timedTextRow struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}
