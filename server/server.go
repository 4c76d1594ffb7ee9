// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package server exposes a display session over JSON-RPC 2.0.
//
// Clients send "update" requests carrying a full display list; the reply
// arrives after the frame has been repainted and presented, acknowledging
// it. "load_image" and "register_font" populate the caches display lists
// reference, and "subscribe_input" turns the connection into the session's
// input subscriber, delivered as "input_event" notifications.
package server

import (
	"context"
	"encoding/json"
	"net"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/display"
	"github.com/go-slate/slate/font"
	"github.com/go-slate/slate/imageio"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// Server serves one display session to JSON-RPC clients.
type Server struct {
	session *display.Session
	images  *imageio.Cache
	fonts   *font.Registry
}

// New creates a server around an existing session with fresh image and
// font caches.
func New(session *display.Session) *Server {
	return &Server{
		session: session,
		images:  imageio.NewCache(),
		fonts:   font.NewRegistry(),
	}
}

// Images returns the image cache display lists resolve against.
func (s *Server) Images() *imageio.Cache { return s.images }

// Fonts returns the font registry display lists resolve against.
func (s *Server) Fonts() *font.Registry { return s.fonts }

// Serve accepts connections until the listener is closed. Each connection
// gets its own JSON-RPC conduit; requests on one connection are handled
// in arrival order.
func (s *Server) Serve(l net.Listener) error {
	ctx := context.Background()
	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		slate.Logger().Info("display client connected", "remote", conn.RemoteAddr())
		jsonrpc2.NewConn(ctx,
			jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}),
			s.handler())
	}
}

// ServeConn runs the protocol over one already-established stream and
// returns when it disconnects.
func (s *Server) ServeConn(ctx context.Context, stream jsonrpc2.ObjectStream) {
	conn := jsonrpc2.NewConn(ctx, stream, s.handler())
	<-conn.DisconnectNotify()
}

type method func(context.Context, *jsonrpc2.Conn, json.RawMessage) (any, error)

func (s *Server) handler() jsonrpc2.Handler {
	methods := map[string]method{
		"update":          s.update,
		"subscribe_input": s.subscribeInput,
		"load_image":      s.loadImage,
		"register_font":   s.registerFont,
	}
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		if req.Params == nil {
			return nil, errInvalidParams
		}
		return fn(ctx, conn, *req.Params)
	})
}

type updateParams struct {
	List []wirePrimitive `json:"list"`
}

type updateResult struct {
	// Damaged is the repainted rectangle, omitted when the frame was
	// unchanged.
	Damaged *wireRect `json:"damaged,omitempty"`
}

type wireRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) update(ctx context.Context, _ *jsonrpc2.Conn, raw json.RawMessage) (any, error) {
	var params updateParams
	if json.Unmarshal(raw, &params) != nil {
		return nil, errInvalidParams
	}

	list, err := decodeList(params.List, s.images, s.fonts)
	if err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}

	damaged, err := s.session.Update(ctx, list)
	if err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()}
	}

	res := updateResult{}
	if damaged.Valid {
		res.Damaged = &wireRect{X: damaged.X, Y: damaged.Y, Width: damaged.Width, Height: damaged.Height}
	}
	return res, nil
}

type inputEventParams struct {
	Kind    uint8 `json:"kind"`
	Key     int   `json:"key,omitempty"`
	Rune    rune  `json:"rune,omitempty"`
	X       int   `json:"x,omitempty"`
	Y       int   `json:"y,omitempty"`
	Buttons uint8 `json:"buttons,omitempty"`
	Millis  int64 `json:"millis"`
}

func (s *Server) subscribeInput(ctx context.Context, conn *jsonrpc2.Conn, _ json.RawMessage) (any, error) {
	events := make(chan display.InputEvent, 64)
	s.session.SubscribeInput(events)

	go func() {
		for ev := range events {
			err := conn.Notify(ctx, "input_event", inputEventParams{
				Kind:    uint8(ev.Kind),
				Key:     ev.Key,
				Rune:    ev.Rune,
				X:       ev.X,
				Y:       ev.Y,
				Buttons: uint8(ev.Buttons),
				Millis:  ev.Elapsed.Milliseconds(),
			})
			if err != nil {
				slate.Logger().Warn("input notify failed", "err", err)
				return
			}
		}
	}()
	return "ok", nil
}

type loadImageParams struct {
	Name string `json:"name"`
	Data []byte `json:"data"` // base64 on the wire
}

func (s *Server) loadImage(_ context.Context, _ *jsonrpc2.Conn, raw json.RawMessage) (any, error) {
	var params loadImageParams
	if json.Unmarshal(raw, &params) != nil || params.Name == "" {
		return nil, errInvalidParams
	}
	img, err := s.images.Register(params.Name, params.Data)
	if err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return map[string]int{"width": img.Width, "height": img.Height}, nil
}

type registerFontParams struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
	Data []byte  `json:"data"` // base64 on the wire
}

func (s *Server) registerFont(_ context.Context, _ *jsonrpc2.Conn, raw json.RawMessage) (any, error) {
	var params registerFontParams
	if json.Unmarshal(raw, &params) != nil || params.Name == "" {
		return nil, errInvalidParams
	}
	if params.Size <= 0 {
		params.Size = 13
	}
	face, err := font.Parse(params.Data, params.Size)
	if err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	s.fonts.Register(params.Name, face)
	return "ok", nil
}
