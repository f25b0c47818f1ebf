package device

// scriptCatalog is the compiled-in script table. Scripts may appear several
// times under the same name with disjoint applicability lists; a bracketed
// list entry matches a core architecture ("[M0]") instead of an MCU family.
var scriptCatalog = []ScriptDef{
	// memory mapping (for Flash programming)
	{"memremap", "LPC8xx,LPC11xx*,LPC11Uxx,LPC12xx,LPC13xx",
		"SYSCON_SYSMEMREMAP = 2\n"},
	{"memremap", "LPC15xx",
		"SYSCON_SYSMEMREMAP = 2\n"},
	{"memremap", "LPC17xx",
		"SCB_MEMMAP = 1\n"},
	{"memremap", "LPC21xx,LPC22xx,LPC23xx,LPC24xx",
		"SCB_MEMMAP = 1\n"},
	{"memremap", "LPC43xx*",
		"M4MEMMAP = 0\n"},

	// MCU-specific configuration for SWO tracing
	{"swo_device", "STM32F1*",
		"RCC_APB2ENR |= 1\n" +
			"AFIO_MAPR |= 0x2000000\n" + // 2 << 24: asynchronous trace mode
			"DBGMCU_CR |= 0x20\n"}, // TRACE_IOEN
	{"swo_device", "STM32F03,STM32F05,STM32F07,STM32F09,STM32F2*,STM32F3*",
		"DBGMCU_CR |= 0x20\n"},
	{"swo_device", "STM32F4*,STM32F7*",
		"RCC_AHB1ENR |= 0x02\n" + // enable GPIOB clock
			"GPIOB_MODER ~= 0x00c0\n" + // PB3: use alternate function
			"GPIOB_MODER |= 0x0080\n" +
			"GPIOB_AFRL ~= 0xf000\n" + // set AF0 (TRACESWO) on PB3
			"GPIOB_OSPEEDR |= 0x00c0\n" + // max speed on PB3
			"GPIOB_PUPDR ~= 0x00c0\n" + // no pull-up or pull-down on PB3
			"DBGMCU_CR |= 0x20\n"},
	{"swo_device", "LPC13xx",
		"TRACECLKDIV = 1\n" +
			"IOCON_PIO0_9 = 0x93\n"},
	{"swo_device", "LPC15xx",
		"TRACECLKDIV = 1\n"},

	// swo_generic
	//   $0 = protocol: 1 = Manchester, 2 = Asynchronous
	//   $1 = CPU clock divider, MCU clock / bit rate
	//   $2 = bit rate
	//   $3 = memory address for the trace variable, Cortex M0/M0+ only
	{"swo_generic", "*",
		"SCB_DEMCR = 0x1000000\n" + // TRCENA
			"TPIU_CSPSR = 1\n" + // protocol width = 1 bit
			"TPIU_SPPR = $0\n" +
			"TPIU_ACPR = $1\n" +
			"TPIU_FFCR = 0\n" + // turn off formatter, discard ETM output
			"ITM_LAR = 0xC5ACCE55\n" + // unlock access to ITM registers
			"ITM_TCR = 0x11\n" + // (1 << 4) | 1
			"ITM_TPR = 0\n"}, // privileged access is off
	{"swo_generic", "[M0]",
		"$3 = $2\n"}, // M0/M0+ has no TPIU/ITM; publish the bit rate instead

	// swo_channels
	//   $0 = enabled channel bit mask
	//   $1 = memory address for the trace variable, Cortex M0/M0+ only
	{"swo_channels", "*",
		"ITM_TER = $0\n"},
	{"swo_channels", "[M0]",
		"$1 = $0\n"},
}

// Scripts returns the built-in script catalog.
func Scripts() []ScriptDef {
	return scriptCatalog
}
