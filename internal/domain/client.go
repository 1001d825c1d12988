package domain

import "go.uber.org/zap/zapcore"

// Client is a hotel guest. Two clients are the same guest when every field
// matches, so Client is usable as a map key.
type Client struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Height int    `json:"height"`
}

func (c Client) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddInt("age", c.Age)
	enc.AddInt("height", c.Height)
	return nil
}
