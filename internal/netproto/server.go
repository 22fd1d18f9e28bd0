package netproto

import (
	"log"
	"net"
	"sync"

	"github.com/pkg/errors"

	"bplustree/internal/bptree"
)

// Server is a TCP front end around a single in-process *bptree.Tree,
// grounded in the teacher project's internal/network.Server but speaking
// netproto instead of an arbitrary byte-value store protocol.
type Server struct {
	addr string
	tree *bptree.Tree
	ln   net.Listener
	mu   sync.Mutex // serializes tree access across connections
}

// NewServer constructs a Server serving tree on addr.
func NewServer(addr string, tree *bptree.Tree) *Server {
	return &Server{addr: addr, tree: tree}
}

// Start listens on addr and serves connections until Stop is called. It
// blocks, so callers typically run it in a goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrap(err, "netproto: listen")
	}
	s.ln = ln

	log.Printf("netproto: listening on %s", s.addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.ln == nil {
				return nil // Stop was called; not an error.
			}
			log.Printf("netproto: accept failed: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Stop closes the listener, causing Start's accept loop to return.
func (s *Server) Stop() error {
	if s.ln == nil {
		return nil
	}
	ln := s.ln
	s.ln = nil
	return ln.Close()
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	log.Printf("netproto: connection from %s", conn.RemoteAddr())

	for {
		msg, err := ReadMessage(conn)
		if err != nil {
			if err != nil && err.Error() != "EOF" {
				log.Printf("netproto: read failed: %v", err)
			}
			break
		}

		resp := s.process(msg)
		if err := WriteResponse(conn, resp); err != nil {
			log.Printf("netproto: write failed: %v", err)
			break
		}
	}

	log.Printf("netproto: connection closed from %s", conn.RemoteAddr())
}

func (s *Server) process(msg *Message) *Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Op {
	case OpInsert:
		s.tree.InsertKey(msg.Key, int(msg.Value))
		return &Response{Status: StatusOK}
	case OpFind:
		rec, ok := s.tree.FindKey(msg.Key)
		if !ok {
			return &Response{Status: StatusNotFound, Error: "key not found"}
		}
		return &Response{Status: StatusOK, Value: int64(rec.Value)}
	case OpDelete:
		s.tree.DeleteKey(msg.Key)
		return &Response{Status: StatusOK}
	case OpDestroy:
		s.tree.Destroy()
		return &Response{Status: StatusOK}
	default:
		return &Response{Status: StatusError, Error: "invalid operation"}
	}
}
