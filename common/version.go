package common

// PackageName identifies this project in metrics and logs.
const PackageName = "wallet-provisioning-backend"

// Version is set at build time via -ldflags.
var Version = "dev"
