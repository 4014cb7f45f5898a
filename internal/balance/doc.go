// Package balance reads and writes the stereo balance of an output device.
//
// The Controller is the only part of ballast with real decision logic.
// Reading is a single property get that degrades to a centered balance when
// the host cannot answer. Writing is either a single property set, or, when
// the "lowestVolume" preference is on, a bounded sequence:
//
//  1. Read the channel count (size of the preferred stereo channel list / 4)
//  2. Read the volume scalar of every channel, elements 1..N
//  3. Write the new balance
//  4. Write the lowest channel volume as the device's main volume
//
// Changing balance on some hardware raises one channel above the level the
// user had set for it. Clamping the main volume to the quietest channel
// avoids that jump.
//
// The first failing step ends the sequence and its error is returned. Steps
// 1 and 2 never write anything. The sequence is not transactional: if step 4
// fails, the balance from step 3 stays applied. Options.RollbackOnVolumeFailure
// opts into restoring the previous balance in that case.
//
// # Usage Example
//
//	ctrl := balance.NewController(hal, store, nil)
//	dev := device.NewLocator(hal).DefaultOutputDevice()
//
//	fmt.Println(ctrl.GetDeviceBalance(dev)) // 0.5 when unreadable
//
//	if err := ctrl.SetDeviceBalance(dev, 0.3); err != nil {
//	    log.Printf("status %s", coreaudio.StatusOf(err))
//	}
//
// # Thread Safety
//
// The controller keeps no state between calls. Concurrent writes to the same
// device are not serialized and may interleave on the device.
package balance
