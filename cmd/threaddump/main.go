// Package main implements the threaddump CLI tool.
//
// threaddump is a small diagnostic harness for the OS thread substrate: it
// spawns named worker threads and reports what the host OS actually sees
// (thread names after truncation, trace ids, stack bounds, live counts),
// which makes it a quick way to verify platform behavior on a new target.
//
// Usage:
//
//	threaddump info              # report substrate and platform capabilities
//	threaddump spawn [count]     # spawn workers, dump their view, join them
//
// This is the CLI entry point for the standalone diagnostic tool.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kolkov/osthread/internal/thread/spawn"
	"github.com/kolkov/osthread/thread"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "info":
		infoCommand()
	case "spawn":
		spawnCommand(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("threaddump version %s\n", thread.Version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// infoCommand reports what this build of the substrate can do on this host.
func infoCommand() {
	info := thread.GetInfo()
	fmt.Printf("osthread %s on %s\n", info.Version, info.Platform)
	fmt.Printf("stack bounds available: %v\n", info.StackBounds)
	fmt.Printf("advisory stack budget:  %d bytes\n", thread.MaxStackSize())

	if name, ok := thread.CurrentName(); ok {
		fmt.Printf("current thread name:    %q\n", name)
	} else {
		fmt.Println("current thread name:    unavailable on this target")
	}
	fmt.Printf("current trace id:       %d\n", thread.CurrentTraceID())
}

// spawnCommand spawns count workers, dumps each worker's own view of its
// thread, and joins them all.
func spawnCommand(args []string) {
	count := 4
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid worker count %q\n", args[0])
			os.Exit(1)
		}
		count = n
	}

	thread.Init()
	defer thread.Fini()

	ids := make(chan thread.JoinID, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("dump-worker-%d", i)
		err := thread.Start(name, func(param any) {
			ids <- thread.CurrentJoinID()
			dumpCurrentThread(param.(int))
		}, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spawning %s failed: %v\n", name, err)
			os.Exit(1)
		}
	}

	for i := 0; i < count; i++ {
		thread.Join(<-ids)
	}
	fmt.Printf("joined %d workers, %d still live\n", count, thread.LiveThreads())
}

// dumpCurrentThread prints the calling worker's introspection results.
func dumpCurrentThread(index int) {
	name := "<unavailable>"
	if n, ok := thread.CurrentName(); ok {
		name = n
	}

	boundsDesc := "unavailable"
	if lo, hi, ok := thread.CurrentStackBounds(); ok {
		boundsDesc = fmt.Sprintf("[%#x, %#x) (%d KiB)", lo, hi, (hi-lo)/1024)
	}

	token := ""
	if th := spawn.Current(); th != nil {
		token = th.Token().String()
	}

	fmt.Printf("worker %d: name=%s trace_id=%d stack=%s token=%s\n",
		index, name, thread.CurrentTraceID(), boundsDesc, token)
}

func printUsage() {
	fmt.Print(`threaddump - OS thread substrate diagnostic tool

USAGE:
    threaddump <command> [arguments]

COMMANDS:
    info       Report substrate version and platform capabilities
    spawn      Spawn worker threads and dump their OS-level view
    version    Show version information
    help       Show this help message

EXAMPLES:
    # Check what this platform supports
    threaddump info

    # Spawn 8 named workers and report their names, ids and stack bounds
    threaddump spawn 8

ENVIRONMENT:
    OSTHREAD_WORKER_PRIORITY    OS priority override for spawned workers
    OSTHREAD_MAX_THREADS        Cap on concurrently live workers
`)
}
