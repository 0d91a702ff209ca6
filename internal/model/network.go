// Package model defines domain models for the checkout pipeline.
package model

import "fmt"

// Network identifies a blockchain the checkout can watch.
type Network string

var (
	Ethereum    Network = "ethereum"
	Polygon     Network = "polygon"
	Base        Network = "base"
	ArbitrumOne Network = "arbitrum_one"
	Linea       Network = "linea"
	Optimism    Network = "optimism"
	AvalancheC  Network = "avalanche_c"
	Tron        Network = "tron"
)

// EVMNetworks lists every EtherScan-family network in a stable order.
var EVMNetworks = []Network{Ethereum, Polygon, Base, ArbitrumOne, Linea, Optimism, AvalancheC}

// chainIDs follows https://docs.etherscan.io/supported-chains.
var chainIDs = map[Network]int64{
	Ethereum:    1,
	Polygon:     137,
	Base:        8453,
	ArbitrumOne: 42161,
	Linea:       59144,
	Optimism:    10,
	AvalancheC:  43114,
}

// IsTron reports whether the network is the Tron network.
func (n Network) IsTron() bool {
	return n == Tron
}

// ChainID returns the EtherScan chain id for an EVM network.
func (n Network) ChainID() (int64, error) {
	id, ok := chainIDs[n]
	if !ok {
		return 0, fmt.Errorf("network %q has no etherscan chain id", n)
	}
	return id, nil
}

// ParseNetwork validates a network name from config.
func ParseNetwork(s string) (Network, error) {
	n := Network(s)
	if n == Tron {
		return n, nil
	}
	if _, ok := chainIDs[n]; ok {
		return n, nil
	}
	return "", fmt.Errorf("unknown network %q", s)
}
