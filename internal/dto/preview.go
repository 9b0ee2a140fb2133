package dto

type PreviewJob struct {
	JobId        string `json:"jobId"`
	NewsletterId int64  `json:"newsletterId"`
	Title        string `json:"title"`
	Topic        string `json:"topic"`
	RequestedBy  string `json:"requestedBy"`
	RequestedAt  string `json:"requestedAt"`
}

type PreviewMsg struct {
	MessageId string
	DeleteTag string
	Payload   PreviewJob
}

type PreviewEmail struct {
	Email    string
	Title    string
	Contents string
	IsHtml   bool
}
