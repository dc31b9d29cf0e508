package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSink counts calls and keeps the last status and body.
type recordingSink struct {
	statusCalls int
	writeCalls  int
	status      int
	body        interface{}
}

func (s *recordingSink) SetStatus(code int) {
	s.statusCalls++
	s.status = code
}

func (s *recordingSink) WriteJSON(body interface{}) {
	s.writeCalls++
	s.body = body
}

// bodyJSON renders the recorded body the way it would go over the wire.
func (s *recordingSink) bodyJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(s.body)
	require.NoError(t, err)
	return string(data)
}

func (s *recordingSink) requireSingleResponse(t *testing.T) {
	t.Helper()
	require.Equal(t, 1, s.statusCalls, "SetStatus calls")
	require.Equal(t, 1, s.writeCalls, "WriteJSON calls")
}
