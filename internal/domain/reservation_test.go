package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestClientEquality(t *testing.T) {
	a := Client{Name: "Test", Age: 1, Height: 1}
	b := Client{Name: "Test", Age: 1, Height: 1}
	c := Client{Name: "Test", Age: 1, Height: 2}

	assert.True(t, a == b)
	assert.False(t, a == c)

	set := map[Client]struct{}{a: {}}
	_, ok := set[b]
	assert.True(t, ok)
	_, ok = set[c]
	assert.False(t, ok)
}

func TestReservation_HasClient(t *testing.T) {
	r := Reservation{Clients: []Client{{Name: "Marc", Age: 19, Height: 180}}}

	assert.True(t, r.HasClient(Client{Name: "Marc", Age: 19, Height: 180}))
	assert.False(t, r.HasClient(Client{Name: "Marc", Age: 19, Height: 181}))
	assert.False(t, Reservation{}.HasClient(Client{}))
}

func TestReservation_Clone(t *testing.T) {
	r := Reservation{ID: 3, HotelName: "Transilvania", Clients: []Client{{Name: "Laura"}}, Days: 2, Price: 80}

	c := r.Clone()
	c.Clients[0].Name = "Changed"

	assert.Equal(t, "Laura", r.Clients[0].Name)
	assert.Equal(t, r.ID, c.ID)
	assert.Equal(t, r.Price, c.Price)
}

func TestReservation_MarshalLogObject(t *testing.T) {
	r := Reservation{ID: 1, HotelName: "Transilvania", Clients: []Client{{Name: "Marc", Age: 19, Height: 180}}, Days: 2, Price: 40}
	enc := zapcore.NewMapObjectEncoder()

	assert.NoError(t, r.MarshalLogObject(enc))

	assert.Equal(t, 1, enc.Fields["id"])
	assert.Equal(t, "Transilvania", enc.Fields["hotel"])
	assert.Equal(t, 40.0, enc.Fields["price"])
	assert.Equal(t, false, enc.Fields["breakfast"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"name": "Marc", "age": 19, "height": 180},
	}, enc.Fields["clients"])
}
