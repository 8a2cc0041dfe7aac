//go:generate sh -c "echo Generating for $TARGET_GOARCH"
//go:generate go run github.com/cilium/ebpf/cmd/bpf2go -type hist -target $TARGET_GOARCH -go-package binary -output-dir ./internal/binary -cc clang -no-strip Runqlen ./bpf/runqlen.c -- -I./bpf/headers -Wno-address-of-packed-member

package main
