package domain

import "go.uber.org/zap/zapcore"

type Reservation struct {
	ID        int      `json:"id"`
	HotelName string   `json:"hotel_name"`
	Clients   []Client `json:"clients"`
	Days      int      `json:"days"`
	Price     float64  `json:"price"`
	Breakfast bool     `json:"breakfast"`
}

// HasClient reports whether c is one of the reservation's guests.
func (r Reservation) HasClient(c Client) bool {
	for _, rc := range r.Clients {
		if rc == c {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with r.
func (r Reservation) Clone() Reservation {
	out := r
	out.Clients = append([]Client(nil), r.Clients...)
	return out
}

func (r Reservation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("id", r.ID)
	enc.AddString("hotel", r.HotelName)
	enc.AddInt("days", r.Days)
	enc.AddFloat64("price", r.Price)
	enc.AddBool("breakfast", r.Breakfast)
	return enc.AddArray("clients", clientList(r.Clients))
}

type clientList []Client

func (l clientList) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, c := range l {
		if err := enc.AppendObject(c); err != nil {
			return err
		}
	}
	return nil
}
