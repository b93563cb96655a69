package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name, xff, remote, want string
	}{
		{"single forwarded", "203.0.113.7", "10.0.0.1", "203.0.113.7"},
		{"forwarded chain", " 203.0.113.7 , 10.0.0.2", "10.0.0.1", "203.0.113.7"},
		{"no header", "", "10.0.0.1", "10.0.0.1"},
		{"blank header", " , ", "10.0.0.1", "10.0.0.1"},
		{"nothing", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.xff, tt.remote))
		})
	}
}

func TestPaginate(t *testing.T) {
	s, e := Paginate(25, 1, 10)
	assert.Equal(t, [2]int{0, 10}, [2]int{s, e})

	s, e = Paginate(25, 3, 10)
	assert.Equal(t, [2]int{20, 25}, [2]int{s, e})

	s, e = Paginate(25, 9, 10)
	assert.Equal(t, [2]int{25, 25}, [2]int{s, e})

	s, e = Paginate(25, 0, 0)
	assert.Equal(t, [2]int{0, 25}, [2]int{s, e})
}
