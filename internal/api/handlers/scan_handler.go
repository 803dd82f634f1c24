package handlers

import (
	"context"
	"errors"

	"nutriscan-api/domain"
	"nutriscan-api/internal/api/presenters"
	"nutriscan-api/pkg/product"
	"nutriscan-api/pkg/scan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type (
	// ScanHandler bridges a device's decoder onto a scan session over a
	// websocket: the device streams candidate decodes, the session accepts
	// at most one, and the resolved product is pushed back before the
	// connection closes.
	ScanHandler interface {
		UpgradeRequired(c *fiber.Ctx) error
		ScanStream() fiber.Handler
	}

	scanHandler struct {
		manager        *scan.Manager
		productService product.ProductService
	}

	scanFrame struct {
		Code   string `json:"code"`
		Format string `json:"format"`
	}
)

func NewScanHandler(manager *scan.Manager, productService product.ProductService) ScanHandler {
	return &scanHandler{
		manager:        manager,
		productService: productService,
	}
}

func (h *scanHandler) UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *scanHandler) ScanStream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(string)
		if !ok {
			writeScanError(conn, domain.MessageFailedTokenInvalid, domain.ErrTokenNotFound)
			return
		}

		sess, err := h.manager.StartSession(userID)
		if err != nil {
			if errors.Is(err, domain.ErrScanInProgress) {
				writeScanError(conn, domain.MessageFailedScanActive, err)
			} else {
				writeScanError(conn, domain.MessageFailedScanInit, err)
			}
			return
		}
		defer h.manager.EndSession(userID, sess)

		remote, ok := sess.Detector().(*scan.RemoteDetector)
		if !ok {
			writeScanError(conn, domain.MessageFailedScanInit, domain.ErrScanInitFailed)
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			for {
				var frame scanFrame
				if err := conn.ReadJSON(&frame); err != nil {
					cancel()
					return
				}
				remote.Offer(scan.Detection{Code: frame.Code, Format: frame.Format})
			}
		}()

		detection, err := sess.Wait(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrScanTimeout) {
				writeScanError(conn, domain.MessageFailedScanTimeout, err)
			}
			return
		}

		resolved, err := h.productService.ResolveBarcode(ctx, detection.Code)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				writeScanError(conn, domain.MessageProductNotFound, err)
			} else {
				writeScanError(conn, domain.MessageProductLookupFailed, err)
			}
			return
		}

		if err := conn.WriteJSON(presenters.Response{
			Status:  "success",
			Message: domain.MessageSuccessScanDetected,
			Data: fiber.Map{
				"barcode": detection.Code,
				"product": resolved,
			},
		}); err != nil {
			log.Errorf("error writing scan result: %v", err)
		}
	})
}

func writeScanError(conn *websocket.Conn, message string, err error) {
	res := presenters.Response{
		Status:  "failed",
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	if writeErr := conn.WriteJSON(res); writeErr != nil {
		log.Errorf("error writing scan error: %v", writeErr)
	}
}
