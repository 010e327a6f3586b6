package ascomserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

// NewDiscoveryService builds the UDP responder for port: the standard
// AlpacaDiscoveryMessage broadcast, answered with apiPort so a client can
// find this server's REST API without being told its address in advance.
func NewDiscoveryService(port, apiPort int, logger *zap.Logger) *DiscoveryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiscoveryService{
		port:    port,
		apiPort: apiPort,
		logger:  logger.With(zap.String("component", "alpaca_discovery")),
	}
}

// Start opens the UDP listener and runs the responder loop on a background
// goroutine, returning once the socket is bound. Call Stop to shut it down.
func (d *DiscoveryService) Start() error {
	addr := &net.UDPAddr{IP: net.IPv4zero, Port: d.port}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("bind discovery socket on port %d: %w", d.port, err)
	}

	response, err := json.Marshal(DiscoveryResponse{AlpacaPort: d.apiPort})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("encode discovery response: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	d.logger.Info("discovery socket bound",
		zap.String("address", conn.LocalAddr().String()),
		zap.Int("alpaca_port", d.apiPort))

	go d.serve(ctx, conn, response)
	return nil
}

// Stop cancels the responder loop and blocks until its goroutine has
// released the socket.
func (d *DiscoveryService) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
}

// serve answers every inbound AlpacaDiscoveryMessage datagram with response
// until ctx is cancelled. A short read deadline lets the loop notice
// cancellation promptly without spinning.
func (d *DiscoveryService) serve(ctx context.Context, conn *net.UDPConn, response []byte) {
	defer close(d.done)
	defer func() { _ = conn.Close() }()

	buf := make([]byte, 1024)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_ = conn.SetReadDeadline(deadlineIn1s())
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			d.logger.Warn("discovery read error", zap.Error(err))
			continue
		}

		if string(buf[:n]) != AlpacaDiscoveryMessage {
			continue
		}

		if _, err := conn.WriteToUDP(response, from); err != nil {
			d.logger.Error("discovery response send failed",
				zap.Stringer("to", from), zap.Error(err))
			continue
		}
		d.logger.Debug("discovery response sent", zap.Stringer("to", from))
	}
}

// deadlineIn1s bounds a single ReadFromUDP call so serve's loop can re-check
// ctx roughly once a second instead of blocking indefinitely.
func deadlineIn1s() time.Time {
	return time.Now().Add(time.Second)
}
