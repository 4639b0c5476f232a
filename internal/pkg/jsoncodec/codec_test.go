package jsoncodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/forge-api/internal/pkg/jsoncodec"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(jsoncodec.Name)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	type message struct {
		PlayerID    string   `json:"player_id"`
		MaterialIDs []string `json:"material_ids"`
	}

	codec := jsoncodec.Codec{}
	data, err := codec.Marshal(&message{PlayerID: "p1", MaterialIDs: []string{"mat_1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"player_id":"p1","material_ids":["mat_1"]}`, string(data))

	var out message
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, "p1", out.PlayerID)
	assert.Equal(t, []string{"mat_1"}, out.MaterialIDs)
}
