package csvsource

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `order_id,item_name,quantity,total_price,order_date,order_time
1,Margherita,2,10,2024-01-01,12:30:00
1,Pepperoni,1,6,2024-01-01,12:31:00
2,Margherita,1,5,2024-01-02,18:00:00
`

func TestSource_Rows(t *testing.T) {
	src := NewSource(strings.NewReader(sampleCSV))

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0]["order_id"])
	assert.Equal(t, "Margherita", rows[0]["item_name"])
	assert.Equal(t, "18:00:00", rows[2]["order_time"])
}

func TestSource_ShortRowsBecomeSparse(t *testing.T) {
	input := "order_id,item_name,quantity\n1,Margherita\n"
	src := NewSource(strings.NewReader(input))

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "1", rows[0]["order_id"])
	_, ok := rows[0]["quantity"]
	assert.False(t, ok)
}

func TestSource_EmptyInputFails(t *testing.T) {
	src := NewSource(strings.NewReader(""))

	rows, err := src.Rows(context.Background())
	require.Error(t, err)
	assert.Nil(t, rows)
}

func TestSource_HeaderOnly(t *testing.T) {
	src := NewSource(strings.NewReader("order_id,item_name\n"))

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSource_CustomDelimiter(t *testing.T) {
	input := "order_id;item_name\n7;Calzone\n"
	src := NewSourceWithDelimiter(strings.NewReader(input), ';')

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Calzone", rows[0]["item_name"])
}

func TestSource_MalformedQuoting(t *testing.T) {
	input := "order_id,item_name\n1,\"broken\n"
	src := NewSource(strings.NewReader(input))

	_, err := src.Rows(context.Background())
	assert.Error(t, err)
}

func TestSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSource(strings.NewReader(sampleCSV))
	_, err := src.Rows(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
