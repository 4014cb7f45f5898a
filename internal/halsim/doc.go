// Package halsim provides a simulated host audio abstraction.
//
// The simulator implements coreaudio.HAL over in-memory devices so balance
// and volume logic can be exercised without audio hardware. It backs the
// test suites and the CLI's --simulate flag.
//
// # Profiles
//
// A profile describes the simulated system in YAML:
//
//	default_output: 73
//	devices:
//	  - id: 73
//	    name: Built-in Output
//	    balance: 0.5
//	    volume: 0.8
//	    channels: [0.8, 0.3]
//
// channels[i] is the volume scalar of channel element i+1.
//
// # Fault Injection
//
// Fail makes a primitive call return a chosen status for one property
// address, which is how the partial failure paths are tested:
//
//	sim.Fail(coreaudio.OpSet, coreaudio.AddressVirtualMainVolume(), coreaudio.StatusIllegalOperation)
//
// Every call is recorded and can be inspected with Calls and Writes.
package halsim
