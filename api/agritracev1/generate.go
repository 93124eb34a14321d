// Package agritracev1 holds the gRPC contract of the agritrace service.
package agritracev1

//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative agritracev1/agritrace.proto
