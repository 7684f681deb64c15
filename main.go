// manage-updates switches OS updates on or off by editing the per-host
// Puppet ENC files consumed by the configuration-management agent.
package main

import "manage-updates/cmd"

func main() {
	cmd.Execute()
}
