// Package proto holds the wire definitions. Generated Go stubs live under
// gen/proto and are produced by the directive below.
package proto

//go:generate protoc --proto_path=. --go_out=paths=source_relative:../gen/proto --go-grpc_out=paths=source_relative:../gen/proto documents/v1/documents.proto
