// Package lsprpc adapts the lsp.Server to a jsonrpc2 stream.
package lsprpc

import (
	"context"
	"fmt"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
	"github.com/kralicky/tools-lite/pkg/event"
	"github.com/kralicky/tools-lite/pkg/jsonrpc2"
	"github.com/protonav/protonav/pkg/lsp"
)

func NewStreamServer() jsonrpc2.StreamServer {
	return &streamServer{}
}

type streamServer struct{}

func (s *streamServer) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	client := protocol.ClientDispatcher(conn)
	server := lsp.NewServer(client)
	handler := protocol.CancelHandler(
		AsyncHandler(
			jsonrpc2.MustReplyHandler(
				protocol.ServerHandler(server, jsonrpc2.MethodNotFound))))
	conn.Go(ctx, handler)
	<-conn.Done()
	if err := conn.Err(); err != nil {
		return fmt.Errorf("server exited with error: %w", err)
	}
	return nil
}

// AsyncHandler delivers requests on separate goroutines while preserving
// request order: each handler may reply out of band, but no request starts
// before the previous one has replied. Hover and definition queries are
// short-lived, so nothing here needs to jump the queue.
func AsyncHandler(handler jsonrpc2.Handler) jsonrpc2.Handler {
	nextRequest := make(chan struct{})
	close(nextRequest)
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		waitForPrevious := nextRequest
		nextRequest = make(chan struct{})
		unlockNext := nextRequest
		innerReply := reply
		reply = func(ctx context.Context, result interface{}, err error) error {
			close(unlockNext)
			return innerReply(ctx, result, err)
		}
		_, queueDone := event.Start(ctx, "queued")
		go func() {
			<-waitForPrevious
			queueDone()
			if err := handler(ctx, reply, req); err != nil {
				event.Error(ctx, "jsonrpc2 async message delivery failed", err)
			}
		}()
		return nil
	}
}
