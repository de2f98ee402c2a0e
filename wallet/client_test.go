package wallet

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruteri/wallet-provisioning-backend/interfaces"
)

// closeTrackingReader records Close calls and fails reads after closing.
type closeTrackingReader struct {
	reader io.Reader
	closed int
}

func (r *closeTrackingReader) Read(p []byte) (int, error) {
	if r.closed > 0 {
		return 0, errors.New("read on closed stream")
	}
	return r.reader.Read(p)
}

func (r *closeTrackingReader) Close() error {
	r.closed++
	return nil
}

func TestClientInit(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Init").Return(nil)

	require.NoError(t, testClient(mockCap).Init())
	mockCap.AssertExpectations(t)
}

func TestClientInit_Failure(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Init").Return(errors.New("native library missing"))

	err := testClient(mockCap).Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capability init failed")
}

func TestClientClose(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Cleanup").Return(nil)

	require.NoError(t, testClient(mockCap).Close())
	mockCap.AssertExpectations(t)
}

func TestDecode(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Decode", "armored payload").Return("plain text")

	stream := &closeTrackingReader{reader: strings.NewReader("armored payload")}
	decoded, err := testClient(mockCap).Decode(stream)
	require.NoError(t, err)
	assert.Equal(t, "plain text", decoded)
	assert.Equal(t, 1, stream.closed)
}

func TestDecode_SentinelFailure(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Decode", "garbage").Return("")

	stream := &closeTrackingReader{reader: strings.NewReader("garbage")}
	_, err := testClient(mockCap).Decode(stream)

	var sentinelErr *interfaces.SentinelReturnError
	require.True(t, errors.As(err, &sentinelErr))
	assert.Equal(t, "Decode", sentinelErr.Op)
	assert.Equal(t, 1, stream.closed)
}

func TestDecode_SecondCallOnClosedStreamFails(t *testing.T) {
	mockCap := new(MockCapability)
	mockCap.On("Decode", "armored payload").Return("plain text")

	client := testClient(mockCap)
	stream := &closeTrackingReader{reader: strings.NewReader("armored payload")}

	_, err := client.Decode(stream)
	require.NoError(t, err)

	// The stream was consumed and closed; decoding it again must fail on the
	// read, not silently return stale data.
	_, err = client.Decode(stream)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read armored payload")
	assert.Equal(t, 2, stream.closed)
}
