// Reforgerconf validates and authors Arma Reforger dedicated server
// configurations.
//
// Machine-written server.json files go through a two-phase check: a
// structural pass that rejects documents that are not server
// configurations at all, and a business-rule pass that reports coded
// errors and warnings for values the server would refuse or that
// degrade the session.
//
// Usage:
//
//	# Validate a configuration
//	reforgerconf validate server.json
//
//	# Validate and re-check on every save
//	reforgerconf validate server.json --watch
//
//	# Generate a configuration from flags
//	reforgerconf new --name "My Server" --output server.json
//
//	# Interactive setup
//	reforgerconf wizard
//
//	# Convert between JSON and YAML
//	reforgerconf convert server.yaml server.json
//
//	# Layer an overlay over a base configuration
//	reforgerconf merge base.json production.json --output server.json
//
//	# Add workshop mods by URL or identifier
//	reforgerconf mod add server.json https://reforger.armaplatform.com/workshop/591AF5BDA9F7CE8B-ACE
package main

func main() {
	Execute()
}
