/*Package tello provides a small, standalone API for sending Tello SDK text commands to a Ryze Tello® drone.

Disclaimer

Tello is a registered trademark of Ryze Tech.  The author(s) of this package is/are in no way affiliated with Ryze, DJI, or Intel.

Use this package at your own risk.  The author(s) is/are in no way responsible for any damage caused either to or by the
drone when using this software.

Features

  * One method per SDK command, eg. TakeOff(), Land(), Go(), Flip()
  * Parameterised commands are formatted (and where the drone has hard limits, clamped) for you
  * Optional launching of an external player (ffplay or ffmpeg) on the video stream

Concepts

Fire and Forget

Each method writes exactly one UDP datagram to the drone's command port (192.168.10.1:8889 by default) and returns.
Replies from the drone ('ok', 'error', query results) are not read, and no drone state is kept, so nothing stops you
calling Land() before TakeOff().  Any network error is returned exactly as the net package reported it.

The drone ignores everything until it is put into SDK mode, so the first call after connecting should be SDKMode().

	drone := tello.New(nil)
	if err := drone.ConnectDefault(); err != nil {
		log.Fatal(err)
	}
	defer drone.Disconnect()
	drone.SDKMode()
	drone.TakeOff()
	drone.Go(10, 10, 10, 20)
	drone.Land()

Video

After StreamOn() the drone sends raw H.264 to UDP port 11111 on the controlling host.  This package does not decode it;
NewFFPlay(DefaultVideoPort).Start(ctx) runs ffplay on udp://@:11111 to display it.

Only the socket handle is guarded by a mutex, commands from several goroutines are sent in whatever order they arrive.
*/
package tello
