package explorer

import (
	"fmt"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// contracts maps (network, token) to the token contract address queried on
// the explorer. Tron has no DAI deployment.
var contracts = map[model.Pair]string{
	{Network: model.Ethereum, Token: model.USDT}:    "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	{Network: model.Ethereum, Token: model.USDC}:    "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	{Network: model.Ethereum, Token: model.DAI}:     "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	{Network: model.Polygon, Token: model.USDT}:     "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
	{Network: model.Polygon, Token: model.USDC}:     "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359",
	{Network: model.Polygon, Token: model.DAI}:      "0x8f3Cf7ad23Cd3CaDbD9735AFf958023239c6A063",
	{Network: model.Base, Token: model.USDT}:        "0xfde4C96c8593536E31F229EA8f37b2ADa2699bb2",
	{Network: model.Base, Token: model.USDC}:        "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	{Network: model.Base, Token: model.DAI}:         "0x50c5725949A6F0c72E6C4a641F24049A917DB0Cb",
	{Network: model.ArbitrumOne, Token: model.USDT}: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
	{Network: model.ArbitrumOne, Token: model.USDC}: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
	{Network: model.ArbitrumOne, Token: model.DAI}:  "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1",
	{Network: model.Linea, Token: model.USDT}:       "0xA219439258ca9da29E9Cc4cE5596924745e12B93",
	{Network: model.Linea, Token: model.USDC}:       "0x176211869cA2b568f2A7D4EE941E073a821EE1ff",
	{Network: model.Linea, Token: model.DAI}:        "0x4AF15ec2A0BD43Db75dd04E62FAA3B8EF36b00d5",
	{Network: model.Optimism, Token: model.USDT}:    "0x94b008aA00579c1307B0EF2c499aD98a8ce58e58",
	{Network: model.Optimism, Token: model.USDC}:    "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85",
	{Network: model.Optimism, Token: model.DAI}:     "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1",
	{Network: model.AvalancheC, Token: model.USDT}:  "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7",
	{Network: model.AvalancheC, Token: model.USDC}:  "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E",
	{Network: model.AvalancheC, Token: model.DAI}:   "0xd586E7F844cEa2F87f50152665BCbc2C279D8d70",
	{Network: model.Tron, Token: model.USDT}:        "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",
	{Network: model.Tron, Token: model.USDC}:        "TEkxiTehnzSmSe2XqrBj4w32RUN966rdz8",
}

// ContractAddress returns the token contract for a pair.
func ContractAddress(pair model.Pair) (string, error) {
	addr, ok := contracts[pair]
	if !ok {
		return "", fmt.Errorf("token %s not deployed on %s", pair.Token, pair.Network)
	}
	return addr, nil
}
