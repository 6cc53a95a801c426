// Package broadcast provides type-safe, non-blocking one-to-many message delivery.
//
// The package uses Go generics so messages stay strongly typed from sender to
// receiver. Memory is the in-process implementation: each subscriber owns a
// buffered channel and a sender never waits on a slow reader. When a buffer is
// full the message is dropped for that subscriber only and counted in Dropped.
//
// Basic usage:
//
//	b := broadcast.NewMemory[string](10)
//	defer b.Close()
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	sub := b.Subscribe(ctx)
//
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Subscribers are removed when:
//   - their context is cancelled
//   - they are closed by their owner (pruned on the next Broadcast)
//   - the broadcaster is closed
//
// The statemachine package builds on this to expose transitions as a channel.
package broadcast
