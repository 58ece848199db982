package model

// Transcript is the full caption text of a video, immutable once fetched.
type Transcript struct {
	VideoID  string `json:"video_id"`
	Language string `json:"language"`
	// Text is the caption fragments merged into one string in original order.
	Text string `json:"text"`
	// AutoGenerated reports whether the source track was ASR rather than
	// manually authored captions.
	AutoGenerated bool `json:"auto_generated"`
}
