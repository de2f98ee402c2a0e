// Command walletctl inspects and operates on the local wallet: listing nyms,
// servers, asset types and accounts, creating and registering nyms, issuing
// asset types and opening asset accounts.
package main
