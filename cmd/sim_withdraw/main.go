package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"wdr/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type submitResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	ReceiptID string `json:"receiptId"`
}

func main() {
	base := flag.String("addr", "http://127.0.0.1:10000", "API base URL")
	chain := flag.String("chain", "bitcoin", "chain")
	amount := flag.String("amount", "0.5", "amount")
	mode := flag.String("mode", "blast", "test mode: blast | invalid")
	n := flag.Int("n", 200, "number of concurrent requests")
	flag.Parse()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ids      = make(map[string]struct{}, *n)
		accepted atomic.Int64
		refused  atomic.Int64
		failed   atomic.Int64
	)

	start := time.Now()
	logger.Infof("Running %s test: n=%d against %s", *mode, *n, *base)

	for i := 0; i < *n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body := fiber.Map{
				"chain":                *chain,
				"address":              fmt.Sprintf("sim-address-%d", i),
				"amount":               *amount,
				"publicCode":           fmt.Sprintf("SIM-%d-%d", start.UnixNano(), i),
				"requirementConfirmed": *mode != "invalid",
			}

			agent := fiber.Post(*base + "/api/withdraw-request").JSON(body).Timeout(5 * time.Second)
			code, raw, errs := agent.Bytes()
			if len(errs) > 0 {
				failed.Add(1)
				logger.Warnf("request %d: %v", i, errs[0])
				return
			}

			var res submitResponse
			if err := json.Unmarshal(raw, &res); err != nil {
				failed.Add(1)
				logger.Warnf("request %d: bad body %q", i, raw)
				return
			}
			if code != fiber.StatusOK || !res.OK {
				refused.Add(1)
				return
			}

			accepted.Add(1)
			mu.Lock()
			ids[res.ReceiptID] = struct{}{}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	logger.Infof("done in %s: accepted=%d refused=%d failed=%d unique_ids=%d",
		time.Since(start).Round(time.Millisecond), accepted.Load(), refused.Load(), failed.Load(), len(ids))

	if int64(len(ids)) != accepted.Load() {
		logger.Fatalf("duplicate receipt ids: accepted=%d unique=%d", accepted.Load(), len(ids))
	}
}
