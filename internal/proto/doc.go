// Package proto holds the wire contract of the credential service: the
// messages and gRPC bindings generated from auth.proto.
//
// Regenerate after editing auth.proto (protoc, protoc-gen-go and
// protoc-gen-go-grpc on PATH):
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative auth.proto
