package view

// NoticeKind selects how a transient message is styled.
type NoticeKind string

const (
	NoticeSuccess  NoticeKind = "success"
	NoticeError    NoticeKind = "error"
	NoticeEvent    NoticeKind = "event"
	NoticeCongrats NoticeKind = "congrats"
)

// Notice is a transient, non-blocking message.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}
