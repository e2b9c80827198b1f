package models

// TranscribeRequest asks the platform to transcribe a lecture video.
type TranscribeRequest struct {
	VideoURL string `json:"videoUrl"`
}

// Transcription is the result of a transcribe call.
type Transcription struct {
	ID       ID     `json:"id,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Status   string `json:"status,omitempty"`
	Text     string `json:"text,omitempty"`
}

// TranscriptSearchRequest runs a semantic search over transcripts. An empty
// ClassID searches every class.
type TranscriptSearchRequest struct {
	Query   string `json:"query"`
	ClassID ID     `json:"classId,omitempty"`
}

// TranscriptSearchResult holds the matches of a transcript search.
type TranscriptSearchResult struct {
	Results []TranscriptMatch `json:"results" validate:"dive"`
}

// TranscriptMatch is a single hit of a transcript search.
type TranscriptMatch struct {
	TranscriptID ID      `json:"transcriptId,omitempty"`
	ClassID      ID      `json:"classId,omitempty"`
	Title        string  `json:"title,omitempty"`
	Snippet      string  `json:"snippet"`
	Timestamp    string  `json:"timestamp,omitempty"`
	Score        float64 `json:"score,omitempty"`
}
