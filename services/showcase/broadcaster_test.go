package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_PublishDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	b.Publish(EventChanged)
	assert.Equal(t, EventChanged, <-ch1)
	assert.Equal(t, EventChanged, <-ch2)
	assert.Equal(t, 2, b.Subscribers())
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)
	b.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers())
}

func TestBroadcaster_PublishDropsForLaggingSubscriber(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	for i := 0; i < 25; i++ {
		b.Publish(EventChanged)
	}
	assert.Len(t, ch, cap(ch))
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	b.Close()
	b.Close()
	_, open := <-ch
	assert.False(t, open)

	late := b.Subscribe()
	_, open = <-late
	assert.False(t, open, "subscribing after Close yields a closed channel")

	b.Publish(EventChanged)
	b.Unsubscribe(late)
}
