package model

// HuntItem is one item of the scavenger hunt content set. The Token is the
// value encoded in the item's QR code; the Hint tells players where to look.
type HuntItem struct {
	Token string `json:"token"`
	Hint  string `json:"hint"`
}
