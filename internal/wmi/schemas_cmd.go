//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

// commandSchemas returns the schema of every builtin command.
func commandSchemas() []*MessageSchema {
	return []*MessageSchema{
		// Start up
		NewSchema(CmdInit, "init").
			Fixed(TagInitCmd, "fixed_param", 24).
			Fixed(TagResourceConfig, "resource_config", 160).
			Mandatory().
			Structs(TagHostMemChunks, "host_mem_chunks", 12).
			Fixed(TagHWModeConfig, "hw_mode_config", 12).
			Structs(TagBandToMAC, "band_to_mac", 12).
			MustBuild(),

		// Scan
		NewSchema(CmdStartScan, "start_scan").
			Fixed(TagStartScanCmd, "fixed_param", 96).
			Words(TagChanList, "chan_list").
			Structs(TagSSIDList, "ssid_list", 36).
			Structs(TagBSSIDList, "bssid_list", 8).
			Bytes(TagIEData, "ie_data").
			Fixed(TagScanFilter, "scan_filter", 28).
			MustBuild(),
		NewSchema(CmdStopScan, "stop_scan").
			Fixed(TagStopScanCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdScanChanList, "scan_chan_list").
			Fixed(TagScanChanListCmd, "fixed_param", 8).
			Structs(TagChannelList, "channel_list", 24).
			MustBuild(),
		NewSchema(CmdScanSchPrioTbl, "scan_sch_prio_tbl").
			Fixed(TagScanSchPrioTblCmd, "fixed_param", 8).
			Words(TagArgs, "priorities").
			MustBuild(),
		NewSchema(CmdScanUpdateRequest, "scan_update_request").
			Fixed(TagScanUpdateRequestCmd, "fixed_param", 28).
			Words(TagChanList, "chan_list").
			MustBuild(),
		NewSchema(CmdScanProbReqOUI, "scan_prob_req_oui").
			Fixed(TagScanProbReqOUICmd, "fixed_param", 12).
			Structs(TagOUIList, "oui_list", 12).
			MustBuild(),
		NewSchema(CmdScanAdaptiveDwellConfig, "scan_adaptive_dwell_config").
			Fixed(TagScanAdaptiveDwellConfigCmd, "fixed_param", 16).
			Words(TagArgs, "dwell_params").
			MustBuild(),
		NewSchema(CmdScanDBSDutyCycle, "scan_dbs_duty_cycle").
			Fixed(TagScanDBSDutyCycleCmd, "fixed_param", 12).
			Words(TagArgs, "duty_cycle").
			MustBuild(),

		// Physical device
		NewSchema(CmdPdevSetRegdomain, "pdev_set_regdomain").
			Fixed(TagPdevSetRegdomainCmd, "fixed_param", 32).
			MustBuild(),
		NewSchema(CmdPdevSetChannel, "pdev_set_channel").
			Fixed(TagPdevSetChannelCmd, "fixed_param", 4).
			Fixed(TagChannel, "channel", 24).
			Mandatory().
			MustBuild(),
		NewSchema(CmdPdevSetParam, "pdev_set_param").
			Fixed(TagPdevSetParamCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPdevPktlogEnable, "pdev_pktlog_enable").
			Fixed(TagPdevPktlogEnableCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevPktlogDisable, "pdev_pktlog_disable").
			Fixed(TagPdevPktlogDisableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevSetWMMParams, "pdev_set_wmm_params").
			Fixed(TagPdevSetWMMParamsCmd, "fixed_param", 8).
			FixedArray(TagWMMParams, "wmm_params", 24, 4).
			MustBuild(),
		NewSchema(CmdPdevSetHTCapIE, "pdev_set_ht_cap_ie").
			Fixed(TagPdevSetHTCapIECmd, "fixed_param", 12).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdPdevSetVHTCapIE, "pdev_set_vht_cap_ie").
			Fixed(TagPdevSetVHTCapIECmd, "fixed_param", 12).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdPdevSetDSCPTIDMap, "pdev_set_dscp_tid_map").
			Fixed(TagPdevSetDSCPTIDMapCmd, "fixed_param", 8).
			FixedArray(TagDSCPTIDMap, "dscp_tid_map", 4, 16).
			MustBuild(),
		NewSchema(CmdPdevSetQuietMode, "pdev_set_quiet_mode").
			Fixed(TagPdevSetQuietModeCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdPdevGreenAPPsEnable, "pdev_green_ap_ps_enable").
			Fixed(TagPdevGreenAPPsEnableCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetTPCConfig, "pdev_get_tpc_config").
			Fixed(TagPdevGetTPCConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetBaseMacaddr, "pdev_set_base_macaddr").
			Fixed(TagPdevSetBaseMacaddrCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPdevDump, "pdev_dump").
			Fixed(TagPdevDumpCmd, "fixed_param", 8).
			Words(TagArgs, "args").
			MustBuild(),
		NewSchema(CmdPdevSetLEDConfig, "pdev_set_led_config").
			Fixed(TagPdevSetLEDConfigCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdPdevGetTemperature, "pdev_get_temperature").
			Fixed(TagPdevGetTemperatureCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetLEDFlashing, "pdev_set_led_flashing").
			Fixed(TagPdevSetLEDFlashingCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdPdevSmartAntEnable, "pdev_smart_ant_enable").
			Fixed(TagPdevSmartAntEnableCmd, "fixed_param", 24).
			Words(TagArgs, "gpio_config").
			MustBuild(),
		NewSchema(CmdPdevSmartAntSetRxAntenna, "pdev_smart_ant_set_rx_antenna").
			Fixed(TagPdevSmartAntSetRxAntennaCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetAntennaSwitchTable, "pdev_set_antenna_switch_table").
			Fixed(TagPdevSetAntennaSwitchTableCmd, "fixed_param", 20).
			Words(TagArgs, "switch_table").
			MustBuild(),
		NewSchema(CmdPdevSetCTLTable, "pdev_set_ctl_table").
			Fixed(TagPdevSetCTLTableCmd, "fixed_param", 12).
			Bytes(TagCTLTable, "ctl_table").
			MustBuild(),
		NewSchema(CmdPdevSetMimogainTable, "pdev_set_mimogain_table").
			Fixed(TagPdevSetMimogainTableCmd, "fixed_param", 12).
			Bytes(TagData, "gain_table").
			MustBuild(),
		NewSchema(CmdPdevFIPS, "pdev_fips").
			Fixed(TagPdevFIPSCmd, "fixed_param", 24).
			Bytes(TagFIPSData, "fips_data").
			MustBuild(),
		NewSchema(CmdPdevGetANICckConfig, "pdev_get_ani_cck_config").
			Fixed(TagPdevGetANICckConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetANIOfdmConfig, "pdev_get_ani_ofdm_config").
			Fixed(TagPdevGetANIOfdmConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetNFCalPower, "pdev_get_nfcal_power").
			Fixed(TagPdevGetNFCalPowerCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetTPC, "pdev_get_tpc").
			Fixed(TagPdevGetTPCCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPdevSetHWMode, "pdev_set_hw_mode").
			Fixed(TagPdevSetHWModeCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetMACConfig, "pdev_set_mac_config").
			Fixed(TagPdevSetMACConfigCmd, "fixed_param", 12).
			Structs(TagBandToMAC, "band_to_mac", 12).
			MustBuild(),
		NewSchema(CmdPdevSetWakeupConfig, "pdev_set_wakeup_config").
			Fixed(TagPdevSetWakeupConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetAntdivStatus, "pdev_get_antdiv_status").
			Fixed(TagPdevGetAntdivStatusCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevGetChipPowerStats, "pdev_get_chip_power_stats").
			Fixed(TagPdevGetChipPowerStatsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetStatsThreshold, "pdev_set_stats_threshold").
			Fixed(TagPdevSetStatsThresholdCmd, "fixed_param", 16).
			Words(TagArgs, "thresholds").
			MustBuild(),
		NewSchema(CmdPdevMultipleVdevRestartRequest, "pdev_multiple_vdev_restart_request").
			Fixed(TagPdevMultipleVdevRestartRequestCmd, "fixed_param", 24).
			Words(TagVdevIDs, "vdev_ids").
			Fixed(TagChannel, "channel", 24).
			MustBuild(),
		NewSchema(CmdPdevUpdatePktRouting, "pdev_update_pkt_routing").
			Fixed(TagPdevUpdatePktRoutingCmd, "fixed_param", 16).
			Words(TagPktRouting, "pkt_routing").
			MustBuild(),
		NewSchema(CmdPdevCheckCalVersion, "pdev_check_cal_version").
			Fixed(TagPdevCheckCalVersionCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevSetDiversityGain, "pdev_set_diversity_gain").
			Fixed(TagPdevSetDiversityGainCmd, "fixed_param", 12).
			Words(TagAntennaGains, "antenna_gains").
			MustBuild(),
		NewSchema(CmdPdevDivRSSIAntid, "pdev_div_rssi_antid").
			Fixed(TagPdevDivRSSIAntidCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPdevBSSChanInfoRequest, "pdev_bss_chan_info_request").
			Fixed(TagPdevBSSChanInfoRequestCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevUpdatePMKCache, "pdev_update_pmk_cache").
			Fixed(TagPdevUpdatePMKCacheCmd, "fixed_param", 24).
			Structs(TagPMKIDs, "pmk_ids", 16).
			MustBuild(),
		NewSchema(CmdPdevUpdateFILSHLPPkt, "pdev_update_fils_hlp_pkt").
			Fixed(TagPdevUpdateFILSHLPPktCmd, "fixed_param", 24).
			Bytes(TagData, "hlp_pkt").
			MustBuild(),
		NewSchema(CmdPdevSetACTxQueueOptimized, "pdev_set_ac_tx_queue_optimized").
			Fixed(TagPdevSetACTxQueueOptimizedCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPdevSetRxFilterPromiscuous, "pdev_set_rx_filter_promiscuous").
			Fixed(TagPdevSetRxFilterPromiscuousCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPdevDMARingCfg, "pdev_dma_ring_cfg").
			Fixed(TagPdevDMARingCfgCmd, "fixed_param", 36).
			MustBuild(),
		NewSchema(CmdPdevSetTxChainmask, "pdev_set_tx_chainmask").
			Fixed(TagPdevSetTxChainmaskCmd, "fixed_param", 8).
			Words(TagTxChainMasks, "tx_chain_masks").
			MustBuild(),
		NewSchema(CmdPdevResume, "pdev_resume").
			Fixed(TagPdevResumeCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevSuspend, "pdev_suspend").
			Fixed(TagPdevSuspendCmd, "fixed_param", 8).
			MustBuild(),

		// Virtual device
		NewSchema(CmdVdevCreate, "vdev_create").
			Fixed(TagVdevCreateCmd, "fixed_param", 32).
			Structs(TagTxrxStreams, "txrx_streams", 12).
			MustBuild(),
		NewSchema(CmdVdevDelete, "vdev_delete").
			Fixed(TagVdevDeleteCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdVdevStartRequest, "vdev_start_request").
			Fixed(TagVdevStartRequestCmd, "fixed_param", 80).
			Fixed(TagChannel, "channel", 24).
			Mandatory().
			Structs(TagNoADescriptors, "noa_descriptors", 16).
			MustBuild(),
		NewSchema(CmdVdevRestartRequest, "vdev_restart_request").
			Fixed(TagVdevRestartRequestCmd, "fixed_param", 80).
			Fixed(TagChannel, "channel", 24).
			Mandatory().
			Structs(TagNoADescriptors, "noa_descriptors", 16).
			MustBuild(),
		NewSchema(CmdVdevUp, "vdev_up").
			Fixed(TagVdevUpCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdVdevStop, "vdev_stop").
			Fixed(TagVdevStopCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdVdevDown, "vdev_down").
			Fixed(TagVdevDownCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdVdevSetParam, "vdev_set_param").
			Fixed(TagVdevSetParamCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevInstallKey, "vdev_install_key").
			Fixed(TagVdevInstallKeyCmd, "fixed_param", 48).
			Bytes(TagKeyData, "key_data").
			FixedArray(TagKeyRSC, "key_rsc", 1, 8).
			MustBuild(),
		NewSchema(CmdVdevWNMSleepmode, "vdev_wnm_sleepmode").
			Fixed(TagVdevWNMSleepmodeCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevWMMAddts, "vdev_wmm_addts").
			Fixed(TagVdevWMMAddtsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdVdevWMMDelts, "vdev_wmm_delts").
			Fixed(TagVdevWMMDeltsCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevSetWMMParams, "vdev_set_wmm_params").
			Fixed(TagVdevSetWMMParamsCmd, "fixed_param", 8).
			FixedArray(TagWMMParams, "wmm_params", 24, 4).
			MustBuild(),
		NewSchema(CmdVdevSetGTXParams, "vdev_set_gtx_params").
			Fixed(TagVdevSetGTXParamsCmd, "fixed_param", 36).
			MustBuild(),
		NewSchema(CmdVdevIPsecNATKeepaliveFilter, "vdev_ipsec_natkeepalive_filter").
			Fixed(TagVdevIPsecNATKeepaliveFilterCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevPLMReqStart, "vdev_plmreq_start").
			Fixed(TagVdevPLMReqStartCmd, "fixed_param", 44).
			Words(TagChanList, "chan_list").
			MustBuild(),
		NewSchema(CmdVdevPLMReqStop, "vdev_plmreq_stop").
			Fixed(TagVdevPLMReqStopCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdVdevTSFTstampAction, "vdev_tsf_tstamp_action").
			Fixed(TagVdevTSFTstampActionCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdVdevSetIE, "vdev_set_ie").
			Fixed(TagVdevSetIECmd, "fixed_param", 16).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdVdevRatemask, "vdev_ratemask").
			Fixed(TagVdevRatemaskCmd, "fixed_param", 8).
			FixedArray(TagRatemaskWords, "ratemask_words", 4, 8).
			MustBuild(),
		NewSchema(CmdVdevSetNACRSSI, "vdev_set_nac_rssi").
			Fixed(TagVdevSetNACRSSICmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdVdevSetQuietMode, "vdev_set_quiet_mode").
			Fixed(TagVdevSetQuietModeCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdVdevSetCustomAggrSize, "vdev_set_custom_aggr_size").
			Fixed(TagVdevSetCustomAggrSizeCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevEncryptDecryptDataReq, "vdev_encrypt_decrypt_data_req").
			Fixed(TagVdevEncryptDecryptDataReqCmd, "fixed_param", 36).
			Bytes(TagKeyData, "key_data").
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(CmdVdevAddMACAddrToRxFilter, "vdev_add_mac_addr_to_rx_filter").
			Fixed(TagVdevAddMACAddrToRxFilterCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdVdevSetARPStats, "vdev_set_arp_stats").
			Fixed(TagVdevSetARPStatsCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdVdevGetARPStats, "vdev_get_arp_stats").
			Fixed(TagVdevGetARPStatsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdVdevGetTxPower, "vdev_get_tx_power").
			Fixed(TagVdevGetTxPowerCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdVdevSetDSCPTIDMap, "vdev_set_dscp_tid_map").
			Fixed(TagVdevSetDSCPTIDMapCmd, "fixed_param", 8).
			FixedArray(TagDSCPTIDMap, "dscp_tid_map", 4, 16).
			MustBuild(),
		NewSchema(CmdVdevSetKeepalive, "vdev_set_keepalive").
			Fixed(TagVdevSetKeepaliveCmd, "fixed_param", 32).
			MustBuild(),
		NewSchema(CmdVdevGetKeepalive, "vdev_get_keepalive").
			Fixed(TagVdevGetKeepaliveCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdVdevSpectralScanConfigure, "vdev_spectral_scan_configure").
			Fixed(TagVdevSpectralScanConfigureCmd, "fixed_param", 76).
			MustBuild(),
		NewSchema(CmdVdevSpectralScanEnable, "vdev_spectral_scan_enable").
			Fixed(TagVdevSpectralScanEnableCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdBcnTmpl, "bcn_tmpl").
			Fixed(TagBcnTmplCmd, "fixed_param", 28).
			Fixed(TagBcnPrbInfo, "bcn_prb_info", 12).
			Mandatory().
			Bytes(TagBufp, "bufp").
			MustBuild(),
		NewSchema(CmdPrbTmpl, "prb_tmpl").
			Fixed(TagPrbTmplCmd, "fixed_param", 16).
			Fixed(TagBcnPrbInfo, "bcn_prb_info", 12).
			Mandatory().
			Bytes(TagBufp, "bufp").
			MustBuild(),
		NewSchema(CmdVdevLimitOffchan, "vdev_limit_offchan").
			Fixed(TagVdevLimitOffchanCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevSetPCL, "vdev_set_pcl").
			Fixed(TagVdevSetPCLCmd, "fixed_param", 8).
			Words(TagArgs, "channel_weights").
			MustBuild(),
		NewSchema(CmdVdevGetMWSCoexInfo, "vdev_get_mws_coex_info").
			Fixed(TagVdevGetMWSCoexInfoCmd, "fixed_param", 8).
			MustBuild(),

		// Peer
		NewSchema(CmdPeerCreate, "peer_create").
			Fixed(TagPeerCreateCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerDelete, "peer_delete").
			Fixed(TagPeerDeleteCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPeerFlushTids, "peer_flush_tids").
			Fixed(TagPeerFlushTidsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerSetParam, "peer_set_param").
			Fixed(TagPeerSetParamCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdPeerAssoc, "peer_assoc").
			Fixed(TagPeerAssocCmd, "fixed_param", 88).
			Bytes(TagRateSet, "rate_set").
			Bytes(TagHTRateSet, "ht_rate_set").
			Structs(TagVHTRateSet, "vht_rate_set", 16).
			Structs(TagHERateSet, "he_rate_set", 12).
			MustBuild(),
		NewSchema(CmdPeerAddWDSEntry, "peer_add_wds_entry").
			Fixed(TagPeerAddWDSEntryCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdPeerRemoveWDSEntry, "peer_remove_wds_entry").
			Fixed(TagPeerRemoveWDSEntryCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerMcastGroup, "peer_mcast_group").
			Fixed(TagPeerMcastGroupCmd, "fixed_param", 40).
			MustBuild(),
		NewSchema(CmdPeerInfoReq, "peer_info_req").
			Fixed(TagPeerInfoReqCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPeerGetEstimatedLinkspeed, "peer_get_estimated_linkspeed").
			Fixed(TagPeerGetEstimatedLinkspeedCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPeerSetRateReportCondition, "peer_set_rate_report_condition").
			Fixed(TagPeerSetRateReportConditionCmd, "fixed_param", 32).
			MustBuild(),
		NewSchema(CmdPeerUpdateWDSEntry, "peer_update_wds_entry").
			Fixed(TagPeerUpdateWDSEntryCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdPeerAddProxyStaEntry, "peer_add_proxy_sta_entry").
			Fixed(TagPeerAddProxyStaEntryCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdPeerSmartAntSetTxAntenna, "peer_smart_ant_set_tx_antenna").
			Fixed(TagPeerSmartAntSetTxAntennaCmd, "fixed_param", 12).
			Words(TagArgs, "antennas").
			MustBuild(),
		NewSchema(CmdPeerSmartAntSetTrainInfo, "peer_smart_ant_set_train_info").
			Fixed(TagPeerSmartAntSetTrainInfoCmd, "fixed_param", 20).
			Words(TagArgs, "train_rates").
			MustBuild(),
		NewSchema(CmdPeerSmartAntSetNodeConfigOps, "peer_smart_ant_set_node_config_ops").
			Fixed(TagPeerSmartAntSetNodeConfigOpsCmd, "fixed_param", 16).
			Words(TagArgs, "node_args").
			MustBuild(),
		NewSchema(CmdPeerATFRequest, "peer_atf_request").
			Fixed(TagPeerATFRequestCmd, "fixed_param", 12).
			Bytes(TagData, "atf_peers").
			MustBuild(),
		NewSchema(CmdPeerBWFRequest, "peer_bwf_request").
			Fixed(TagPeerBWFRequestCmd, "fixed_param", 12).
			Bytes(TagData, "bwf_peers").
			MustBuild(),
		NewSchema(CmdPeerReorderQueueSetup, "peer_reorder_queue_setup").
			Fixed(TagPeerReorderQueueSetupCmd, "fixed_param", 32).
			MustBuild(),
		NewSchema(CmdPeerReorderQueueRemove, "peer_reorder_queue_remove").
			Fixed(TagPeerReorderQueueRemoveCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerSetRxBlocksize, "peer_set_rx_blocksize").
			Fixed(TagPeerSetRxBlocksizeCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerAntdivInfoReq, "peer_antdiv_info_req").
			Fixed(TagPeerAntdivInfoReqCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdPeerUnmapResponse, "peer_unmap_response").
			Fixed(TagPeerUnmapResponseCmd, "fixed_param", 8).
			Words(TagArgs, "peer_ids").
			MustBuild(),
		NewSchema(CmdPeerTIDConfigurations, "peer_tid_configurations").
			Fixed(TagPeerTIDConfigurationsCmd, "fixed_param", 40).
			MustBuild(),

		// Management frames
		NewSchema(CmdMgmtTx, "mgmt_tx").
			Fixed(TagMgmtTxCmd, "fixed_param", 24).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(CmdMgmtTxSend, "mgmt_tx_send").
			Fixed(TagMgmtTxSendCmd, "fixed_param", 48).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(CmdOffchanDataTxSend, "offchan_data_tx_send").
			Fixed(TagOffchanDataTxSendCmd, "fixed_param", 40).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(CmdBcnOffloadCtrl, "bcn_offload_ctrl").
			Fixed(TagBcnOffloadCtrlCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdPrbRespTmpl, "prb_resp_tmpl").
			Fixed(TagPrbRespTmplCmd, "fixed_param", 16).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(CmdFDTmpl, "fd_tmpl").
			Fixed(TagFDTmplCmd, "fixed_param", 16).
			Bytes(TagBufp, "bufp").
			Mandatory().
			MustBuild(),
		NewSchema(CmdBcnSendFromHost, "bcn_send_from_host").
			Fixed(TagBcnSendFromHostCmd, "fixed_param", 36).
			Bytes(TagBufp, "bufp").
			MustBuild(),

		// Block ack negotiation
		NewSchema(CmdAddBAClearResp, "addba_clear_resp").
			Fixed(TagAddBAClearRespCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdAddBASend, "addba_send").
			Fixed(TagAddBASendCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdDelBASend, "delba_send").
			Fixed(TagDelBASendCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdAddBASetResp, "addba_set_resp").
			Fixed(TagAddBASetRespCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdSendSingleAMSDU, "send_singleamsdu").
			Fixed(TagSendSingleAMSDUCmd, "fixed_param", 16).
			MustBuild(),

		// Station power save
		NewSchema(CmdStaPowersaveMode, "sta_powersave_mode").
			Fixed(TagStaPowersaveModeCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdStaPowersaveParam, "sta_powersave_param").
			Fixed(TagStaPowersaveParamCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdStaMimoPsMode, "sta_mimo_ps_mode").
			Fixed(TagStaMimoPsModeCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdAPPsPeerParam, "ap_ps_peer_param").
			Fixed(TagAPPsPeerParamCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdAPPsPeerUAPSDCoex, "ap_ps_peer_uapsd_coex").
			Fixed(TagAPPsPeerUAPSDCoexCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdAPPsEGAPParam, "ap_ps_egap_param").
			Fixed(TagAPPsEGAPParamCmd, "fixed_param", 16).
			MustBuild(),

		// DFS
		NewSchema(CmdPdevDFSEnable, "pdev_dfs_enable").
			Fixed(TagPdevDFSEnableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevDFSDisable, "pdev_dfs_disable").
			Fixed(TagPdevDFSDisableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdDFSPhyErrFilterEna, "dfs_phyerr_filter_ena").
			Fixed(TagDFSPhyErrFilterEnaCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdDFSPhyErrFilterDis, "dfs_phyerr_filter_dis").
			Fixed(TagDFSPhyErrFilterDisCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevDFSPhyErrOffloadEnable, "pdev_dfs_phyerr_offload_enable").
			Fixed(TagPdevDFSPhyErrOffloadEnableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevDFSPhyErrOffloadDisable, "pdev_dfs_phyerr_offload_disable").
			Fixed(TagPdevDFSPhyErrOffloadDisableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdVdevADFSChCfg, "vdev_adfs_ch_cfg").
			Fixed(TagVdevADFSChCfgCmd, "fixed_param", 28).
			MustBuild(),
		NewSchema(CmdVdevADFSOCACAbort, "vdev_adfs_ocac_abort").
			Fixed(TagVdevADFSOCACAbortCmd, "fixed_param", 4).
			MustBuild(),

		// Roaming
		NewSchema(CmdRoamScanMode, "roam_scan_mode").
			Fixed(TagRoamScanModeCmd, "fixed_param", 20).
			Fixed(TagStartScanCmd, "start_scan", 96).
			Fixed(TagAPProfile, "ap_profile", 60).
			Fixed(TagRoamOffload, "roam_offload", 44).
			Fixed(TagRoam11iOffload, "roam_11i_offload", 132).
			Fixed(TagRoam11rOffload, "roam_11r_offload", 104).
			Fixed(TagRoamESEOffload, "roam_ese_offload", 48).
			Bytes(TagAssocIE, "assoc_ie").
			MustBuild(),
		NewSchema(CmdRoamScanRSSIThreshold, "roam_scan_rssi_threshold").
			Fixed(TagRoamScanRSSIThresholdCmd, "fixed_param", 32).
			Fixed(TagRoamRSSICfg, "roam_rssi_cfg", 24).
			MustBuild(),
		NewSchema(CmdRoamScanPeriod, "roam_scan_period").
			Fixed(TagRoamScanPeriodCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdRoamScanRSSIChangeThreshold, "roam_scan_rssi_change_threshold").
			Fixed(TagRoamScanRSSIChangeThresholdCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdRoamAPProfile, "roam_ap_profile").
			Fixed(TagRoamAPProfileCmd, "fixed_param", 12).
			Fixed(TagAPProfile, "ap_profile", 60).
			Mandatory().
			MustBuild(),
		NewSchema(CmdRoamChanList, "roam_chan_list").
			Fixed(TagRoamChanListCmd, "fixed_param", 16).
			Words(TagChanList, "chan_list").
			MustBuild(),
		NewSchema(CmdRoamScanCmd, "roam_scan_cmd").
			Fixed(TagRoamScanCmdCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdRoamSynchComplete, "roam_synch_complete").
			Fixed(TagRoamSynchCompleteCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdRoamSetRICRequest, "roam_set_ric_request").
			Fixed(TagRoamSetRICRequestCmd, "fixed_param", 24).
			Bytes(TagRICData, "ric_data").
			MustBuild(),
		NewSchema(CmdRoamInvoke, "roam_invoke").
			Fixed(TagRoamInvokeCmd, "fixed_param", 20).
			Words(TagChanList, "chan_list").
			Structs(TagBSSIDList, "bssid_list", 8).
			Bytes(TagBufp, "frame").
			MustBuild(),
		NewSchema(CmdRoamFilter, "roam_filter").
			Fixed(TagRoamFilterCmd, "fixed_param", 20).
			Structs(TagBSSIDList, "blacklist", 8).
			Structs(TagMACList, "whitelist", 8).
			Structs(TagSSIDList, "preferred_ssids", 36).
			MustBuild(),
		NewSchema(CmdRoamSubnetChangeConfig, "roam_subnet_change_config").
			Fixed(TagRoamSubnetChangeConfigCmd, "fixed_param", 16).
			Structs(TagBSSIDList, "skip_bssids", 8).
			MustBuild(),
		NewSchema(CmdRoamConfigureMAWC, "roam_configure_mawc").
			Fixed(TagRoamConfigureMAWCCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdRoamSetMBOParam, "roam_set_mbo_param").
			Fixed(TagRoamSetMBOParamCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdRoamPERConfig, "roam_per_config").
			Fixed(TagRoamPERConfigCmd, "fixed_param", 40).
			MustBuild(),
		NewSchema(CmdRoamBSSLoadConfig, "roam_bss_load_config").
			Fixed(TagRoamBSSLoadConfigCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdRoamDeauthConfig, "roam_deauth_config").
			Fixed(TagRoamDeauthConfigCmd, "fixed_param", 12).
			Words(TagArgs, "deauth_reasons").
			MustBuild(),
		NewSchema(CmdRoamIdleConfig, "roam_idle_config").
			Fixed(TagRoamIdleConfigCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdRoamPreauthStatus, "roam_preauth_status").
			Fixed(TagRoamPreauthStatusCmd, "fixed_param", 20).
			Structs(TagPMKIDs, "pmk_ids", 16).
			MustBuild(),

		// OCB and other offloads
		NewSchema(CmdOCBSetConfig, "ocb_set_config").
			Fixed(TagOCBSetConfigCmd, "fixed_param", 24).
			Structs(TagChannelList, "channel_list", 24).
			Fixed(TagOCBSched, "ocb_sched", 20).
			Words(TagArgs, "ndl_chan_list").
			MustBuild(),
		NewSchema(CmdOCBSetUtcTime, "ocb_set_utc_time").
			Fixed(TagOCBSetUtcTimeCmd, "fixed_param", 24).
			MustBuild(),
		NewSchema(CmdOCBStartTimingAdvert, "ocb_start_timing_advert").
			Fixed(TagOCBStartTimingAdvertCmd, "fixed_param", 20).
			Bytes(TagData, "template").
			MustBuild(),
		NewSchema(CmdOCBStopTimingAdvert, "ocb_stop_timing_advert").
			Fixed(TagOCBStopTimingAdvertCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdOCBGetTSFTimer, "ocb_get_tsf_timer").
			Fixed(TagOCBGetTSFTimerCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdDCCGetStats, "dcc_get_stats").
			Fixed(TagDCCGetStatsCmd, "fixed_param", 8).
			Structs(TagChannelList, "channel_list", 24).
			MustBuild(),
		NewSchema(CmdDCCClearStats, "dcc_clear_stats").
			Fixed(TagDCCClearStatsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdDCCUpdateNDL, "dcc_update_ndl").
			Fixed(TagDCCUpdateNDLCmd, "fixed_param", 8).
			Structs(TagChannelList, "channel_list", 24).
			Bytes(TagData, "ndl_active_states").
			MustBuild(),
		NewSchema(CmdRSSIBreachMonitorConfig, "rssi_breach_monitor_config").
			Fixed(TagRSSIBreachMonitorConfigCmd, "fixed_param", 40).
			MustBuild(),
		NewSchema(CmdLPIStartScan, "lpi_start_scan").
			Fixed(TagLPIStartScanCmd, "fixed_param", 64).
			Words(TagChanList, "chan_list").
			Structs(TagSSIDList, "ssid_list", 36).
			Structs(TagBSSIDList, "bssid_list", 8).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdLPIStopScan, "lpi_stop_scan").
			Fixed(TagLPIStopScanCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdLPIMgmtSnoopingConfig, "lpi_mgmt_snooping_config").
			Fixed(TagLPIMgmtSnoopingConfigCmd, "fixed_param", 4).
			MustBuild(),

		// Wake on wireless
		NewSchema(CmdWoWAddWakePattern, "wow_add_wake_pattern").
			Fixed(TagWoWAddWakePatternCmd, "fixed_param", 16).
			Structs(TagWoWBitmapPatterns, "wow_bitmap_patterns", 64).
			Structs(TagIPv4Sync, "ipv4_sync", 16).
			Structs(TagIPv6Sync, "ipv6_sync", 40).
			Structs(TagMagicPatterns, "magic_patterns", 8).
			Words(TagPatternTimeouts, "pattern_timeouts").
			Words(TagArgs, "ra_ratelimit").
			MustBuild(),
		NewSchema(CmdWoWDelWakePattern, "wow_del_wake_pattern").
			Fixed(TagWoWDelWakePatternCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdWoWEnableDisableWakeEvent, "wow_enable_disable_wake_event").
			Fixed(TagWoWEnableDisableWakeEventCmd, "fixed_param", 20).
			Words(TagWakeReasons, "event_bitmaps").
			MustBuild(),
		NewSchema(CmdWoWEnable, "wow_enable").
			Fixed(TagWoWEnableCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdWoWHostwakeupFromSleep, "wow_hostwakeup_from_sleep").
			Fixed(TagWoWHostwakeupFromSleepCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdWoWIOACAddKeepalive, "wow_ioac_add_keepalive").
			Fixed(TagWoWIOACAddKeepaliveCmd, "fixed_param", 12).
			Words(TagArgs, "keepalive_slots").
			MustBuild(),
		NewSchema(CmdWoWIOACDelKeepalive, "wow_ioac_del_keepalive").
			Fixed(TagWoWIOACDelKeepaliveCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdWoWIOACAddWakePattern, "wow_ioac_add_wake_pattern").
			Fixed(TagWoWIOACAddWakePatternCmd, "fixed_param", 16).
			Bytes(TagPattern, "pattern").
			Bytes(TagBitmask, "bitmask").
			MustBuild(),
		NewSchema(CmdWoWIOACDelWakePattern, "wow_ioac_del_wake_pattern").
			Fixed(TagWoWIOACDelWakePatternCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdD0WoWEnableDisable, "d0_wow_enable_disable").
			Fixed(TagD0WoWEnableDisableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdExtWoWEnable, "extwow_enable").
			Fixed(TagExtWoWEnableCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdExtWoWSetAppType1Params, "extwow_set_app_type1_params").
			Fixed(TagExtWoWSetAppType1ParamsCmd, "fixed_param", 36).
			Bytes(TagData, "identification_id").
			MustBuild(),
		NewSchema(CmdExtWoWSetAppType2Params, "extwow_set_app_type2_params").
			Fixed(TagExtWoWSetAppType2ParamsCmd, "fixed_param", 112).
			Bytes(TagData, "keep_alive_pkt").
			MustBuild(),
		NewSchema(CmdWoWEnableICMPv6NaFlt, "wow_enable_icmpv6_na_flt").
			Fixed(TagWoWEnableICMPv6NaFltCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdWoWUDPSvcOfld, "wow_udp_svc_ofld").
			Fixed(TagWoWUDPSvcOfldCmd, "fixed_param", 12).
			Bytes(TagPattern, "udp_svc_payload").
			Bytes(TagBitmask, "udp_svc_response").
			MustBuild(),
		NewSchema(CmdWoWHostwakeupGPIOPinPatternConfig, "wow_hostwakeup_gpio_pin_pattern_config").
			Fixed(TagWoWHostwakeupGPIOPinPatternConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdWoWSetActionWakeUp, "wow_set_action_wake_up").
			Fixed(TagWoWSetActionWakeUpCmd, "fixed_param", 16).
			Words(TagArgs, "action_bitmaps").
			MustBuild(),

		// RTT and OEM
		NewSchema(CmdRTTMeasreq, "rtt_measreq").
			Fixed(TagRTTMeasreqCmd, "fixed_param", 12).
			Structs(TagRTTRequests, "rtt_requests", 40).
			MustBuild(),
		NewSchema(CmdRTTTSF, "rtt_tsf").
			Fixed(TagRTTTSFCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdOEMReq, "oem_req").
			Fixed(TagOEMReqCmd, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),

		// Spectral scan
		NewSchema(CmdSpectralScanConf, "spectral_scan_conf").
			Fixed(TagSpectralScanConfCmd, "fixed_param", 76).
			MustBuild(),
		NewSchema(CmdSpectralScanEnable, "spectral_scan_enable").
			Fixed(TagSpectralScanEnableCmd, "fixed_param", 12).
			MustBuild(),

		// Statistics
		NewSchema(CmdRequestStats, "request_stats").
			Fixed(TagRequestStatsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdMCCSchedTrafficStats, "mcc_sched_traffic_stats").
			Fixed(TagMCCSchedTrafficStatsCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdRequestLinkStats, "request_link_stats").
			Fixed(TagRequestLinkStatsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdClearLinkStats, "clear_link_stats").
			Fixed(TagClearLinkStatsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdStartLinkStats, "start_link_stats").
			Fixed(TagStartLinkStatsCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdRequestStatsExt, "request_stats_ext").
			Fixed(TagRequestStatsExtCmd, "fixed_param", 12).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(CmdRequestPeerStatsInfo, "request_peer_stats_info").
			Fixed(TagRequestPeerStatsInfoCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdRequestRadioChanStats, "request_radio_chan_stats").
			Fixed(TagRequestRadioChanStatsCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdRequestWLMStats, "request_wlm_stats").
			Fixed(TagRequestWLMStatsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdRequestRCPI, "request_rcpi").
			Fixed(TagRequestRCPICmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdRequestBcnStats, "request_bcn_stats").
			Fixed(TagRequestBcnStatsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdRequestPeerStatsInfoExt, "request_peer_stats_info_ext").
			Fixed(TagRequestPeerStatsInfoExtCmd, "fixed_param", 16).
			MustBuild(),

		// ARP and NS offload
		NewSchema(CmdSetARPNSOffload, "set_arp_ns_offload").
			Fixed(TagSetARPNSOffloadCmd, "fixed_param", 12).
			FixedArray(TagNSTuples, "ns_tuples", 48, 2).
			FixedArray(TagARPTuples, "arp_tuples", 28, 2).
			Structs(TagNSExtTuples, "ns_ext_tuples", 48).
			MustBuild(),
		NewSchema(CmdAddProactiveARPRspPattern, "add_proactive_arp_rsp_pattern").
			Fixed(TagAddProactiveARPRspPatternCmd, "fixed_param", 20).
			Bytes(TagPattern, "pattern").
			MustBuild(),
		NewSchema(CmdDelProactiveARPRspPattern, "del_proactive_arp_rsp_pattern").
			Fixed(TagDelProactiveARPRspPatternCmd, "fixed_param", 8).
			MustBuild(),

		// Network list offload
		NewSchema(CmdNetworkListOffloadConfig, "network_list_offload_config").
			Fixed(TagNetworkListOffloadConfigCmd, "fixed_param", 64).
			Structs(TagNLONetworks, "nlo_networks", 56).
			Words(TagChanList, "chan_list").
			Fixed(TagNLOChannelPrediction, "nlo_channel_prediction", 16).
			MustBuild(),
		NewSchema(CmdApfind, "apfind").
			Fixed(TagApfindCmd, "fixed_param", 4).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(CmdPasspointListConfig, "passpoint_list_config").
			Fixed(TagPasspointListConfigCmd, "fixed_param", 16).
			Structs(TagPasspointNetworks, "passpoint_networks", 260).
			MustBuild(),
		NewSchema(CmdNLOConfigRSSIParams, "nlo_config_rssi_params").
			Fixed(TagNLOConfigRSSIParamsCmd, "fixed_param", 20).
			MustBuild(),

		// GTK offload
		NewSchema(CmdGTKOffload, "gtk_offload").
			Fixed(TagGTKOffloadCmd, "fixed_param", 28).
			FixedArray(TagKCK, "kck", 1, 16).
			FixedArray(TagKEK, "kek", 1, 16).
			FixedArray(TagReplayCounter, "replay_counter", 1, 8).
			MustBuild(),
		NewSchema(CmdGTKOffloadGetInfo, "gtk_offload_get_info").
			Fixed(TagGTKOffloadGetInfoCmd, "fixed_param", 8).
			MustBuild(),

		// Checksum offload
		NewSchema(CmdVdevSetCsumOffload, "vdev_set_csum_offload").
			Fixed(TagVdevSetCsumOffloadCmd, "fixed_param", 12).
			MustBuild(),

		// Chatter mode
		NewSchema(CmdChatterSetMode, "chatter_set_mode").
			Fixed(TagChatterSetModeCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdChatterAddCoalescingFilter, "chatter_add_coalescing_filter").
			Fixed(TagChatterAddCoalescingFilterCmd, "fixed_param", 8).
			Bytes(TagData, "filters").
			MustBuild(),
		NewSchema(CmdChatterDeleteCoalescingFilter, "chatter_delete_coalescing_filter").
			Fixed(TagChatterDeleteCoalescingFilterCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdChatterCoalescingQuery, "chatter_coalescing_query").
			Fixed(TagChatterCoalescingQueryCmd, "fixed_param", 4).
			MustBuild(),

		// TID
		NewSchema(CmdPeerTIDAddBA, "peer_tid_addba").
			Fixed(TagPeerTIDAddBACmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdPeerTIDDelBA, "peer_tid_delba").
			Fixed(TagPeerTIDDelBACmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdStaDTIMPsMethod, "sta_dtim_ps_method").
			Fixed(TagStaDTIMPsMethodCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdStaUAPSDAutoTrig, "sta_uapsd_auto_trig").
			Fixed(TagStaUAPSDAutoTrigCmd, "fixed_param", 12).
			Words(TagArgs, "ac_params").
			MustBuild(),
		NewSchema(CmdStaKeepalive, "sta_keepalive").
			Fixed(TagStaKeepaliveCmd, "fixed_param", 16).
			Bytes(TagData, "arp_rsp").
			MustBuild(),

		// Station vdev
		NewSchema(CmdVdevStaBATimeout, "vdev_sta_ba_timeout").
			Fixed(TagVdevStaBATimeoutCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevStaSMPSForceMode, "vdev_sta_smps_force_mode").
			Fixed(TagVdevStaSMPSForceModeCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdVdevStaSMPSParam, "vdev_sta_smps_param").
			Fixed(TagVdevStaSMPSParamCmd, "fixed_param", 12).
			MustBuild(),

		// Miscellaneous
		NewSchema(CmdEcho, "echo").
			Fixed(TagEchoCmd, "fixed_param", 4).
			Bytes(TagEchoData, "echo_data").
			MustBuild(),
		NewSchema(CmdPdevUTF, "pdev_utf").
			Fixed(TagPdevUTFCmd, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(CmdDbgLogCfg, "dbglog_cfg").
			Fixed(TagDbgLogCfgCmd, "fixed_param", 20).
			Words(TagModuleIDs, "module_ids").
			Words(TagConfigValues, "config_values").
			MustBuild(),
		NewSchema(CmdPdevQVIT, "pdev_qvit").
			Fixed(TagPdevQVITCmd, "fixed_param", 4).
			Bytes(TagData, "data").
			MustBuild(),
		NewSchema(CmdFwtestVdevMCCSetTBTTMode, "fwtest_vdev_mcc_set_tbtt_mode").
			Fixed(TagFwtestVdevMCCSetTBTTModeCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdVdevSetKeepaliveV2, "vdev_set_keepalive_v2").
			Fixed(TagVdevSetKeepaliveV2Cmd, "fixed_param", 32).
			MustBuild(),
		NewSchema(CmdForceFWHang, "force_fw_hang").
			Fixed(TagForceFWHangCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdSetMcastBcastFilter, "set_mcastbcast_filter").
			Fixed(TagSetMcastBcastFilterCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdDbgLogTimeStampSync, "dbglog_time_stamp_sync").
			Fixed(TagDbgLogTimeStampSyncCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdSetMultipleMcastFilter, "set_multiple_mcast_filter").
			Fixed(TagSetMultipleMcastFilterCmd, "fixed_param", 8).
			Structs(TagMACList, "mac_list", 8).
			MustBuild(),
		NewSchema(CmdGetFWMemDump, "get_fw_mem_dump").
			Fixed(TagGetFWMemDumpCmd, "fixed_param", 8).
			Words(TagArgs, "mem_seg_ids").
			MustBuild(),
		NewSchema(CmdDebugMesgFlush, "debug_mesg_flush").
			Fixed(TagDebugMesgFlushCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdDiagEventLogConfig, "diag_event_log_config").
			Fixed(TagDiagEventLogConfigCmd, "fixed_param", 8).
			Words(TagArgs, "diag_events").
			MustBuild(),
		NewSchema(CmdSetCurrentCountry, "set_current_country").
			Fixed(TagSetCurrentCountryCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdSetInitCountry, "set_init_country").
			Fixed(TagSetInitCountryCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdSet11dCountry, "set_11d_country").
			Fixed(TagSet11dCountryCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdRequestWlanStats, "request_wlan_stats").
			Fixed(TagRequestWlanStatsCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdRequestRSSI, "request_rssi").
			Fixed(TagRequestRSSICmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdPdevGetNFCalPowerExt, "pdev_get_nfcal_power_ext").
			Fixed(TagPdevGetNFCalPowerExtCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdSetFWDebugTSF, "set_fw_debug_tsf").
			Fixed(TagSetFWDebugTSFCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdUnitTest, "unit_test").
			Fixed(TagUnitTestCmd, "fixed_param", 16).
			Words(TagArgs, "args").
			MustBuild(),

		// GPIO
		NewSchema(CmdGPIOConfig, "gpio_config").
			Fixed(TagGPIOConfigCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdGPIOOutput, "gpio_output").
			Fixed(TagGPIOOutputCmd, "fixed_param", 8).
			MustBuild(),

		// Firmware test
		NewSchema(CmdFwtestP2PSetOppPSParam, "fwtest_p2p_set_oppps_param").
			Fixed(TagFwtestP2PSetOppPSParamCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdFwtestUnitTest, "fwtest_unit_test").
			Fixed(TagFwtestUnitTestCmd, "fixed_param", 16).
			Words(TagArgs, "args").
			MustBuild(),
		NewSchema(CmdFwtestNANTest, "fwtest_nan_test").
			Fixed(TagFwtestNANTestCmd, "fixed_param", 8).
			Bytes(TagData, "data").
			MustBuild(),

		// TDLS
		NewSchema(CmdTDLSSetState, "tdls_set_state").
			Fixed(TagTDLSSetStateCmd, "fixed_param", 64).
			MustBuild(),
		NewSchema(CmdTDLSPeerUpdate, "tdls_peer_update").
			Fixed(TagTDLSPeerUpdateCmd, "fixed_param", 20).
			Fixed(TagTDLSPeerCaps, "tdls_peer_caps", 40).
			Mandatory().
			Structs(TagChannelList, "channel_list", 24).
			MustBuild(),
		NewSchema(CmdTDLSSetOffchanMode, "tdls_set_offchan_mode").
			Fixed(TagTDLSSetOffchanModeCmd, "fixed_param", 32).
			MustBuild(),

		// Resource manager
		NewSchema(CmdResmgrAdaptiveOcsEnDis, "resmgr_adaptive_ocs_en_dis").
			Fixed(TagResmgrAdaptiveOcsEnDisCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdResmgrSetChanTimeQuota, "resmgr_set_chan_time_quota").
			Fixed(TagResmgrSetChanTimeQuotaCmd, "fixed_param", 8).
			Structs(TagMCCQuota, "mcc_quota", 8).
			MustBuild(),
		NewSchema(CmdResmgrSetChanLatency, "resmgr_set_chan_latency").
			Fixed(TagResmgrSetChanLatencyCmd, "fixed_param", 8).
			Structs(TagLatencyList, "latency_list", 8).
			MustBuild(),

		// P2P
		NewSchema(CmdP2PDevSetDeviceInfo, "p2p_dev_set_device_info").
			Fixed(TagP2PDevSetDeviceInfoCmd, "fixed_param", 20).
			Bytes(TagData, "device_type").
			MustBuild(),
		NewSchema(CmdP2PDevSetDiscoverability, "p2p_dev_set_discoverability").
			Fixed(TagP2PDevSetDiscoverabilityCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdP2PGoSetBeaconIE, "p2p_go_set_beacon_ie").
			Fixed(TagP2PGoSetBeaconIECmd, "fixed_param", 12).
			Bytes(TagBeaconIE, "beacon_ie").
			MustBuild(),
		NewSchema(CmdP2PGoSetProbeRespIE, "p2p_go_set_probe_resp_ie").
			Fixed(TagP2PGoSetProbeRespIECmd, "fixed_param", 12).
			Bytes(TagProbeIE, "probe_ie").
			MustBuild(),
		NewSchema(CmdP2PSetVendorIEData, "p2p_set_vendor_ie_data").
			Fixed(TagP2PSetVendorIEDataCmd, "fixed_param", 24).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdP2PDiscOffloadConfig, "p2p_disc_offload_config").
			Fixed(TagP2PDiscOffloadConfigCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdP2PDiscOffloadAppIE, "p2p_disc_offload_appie").
			Fixed(TagP2PDiscOffloadAppIECmd, "fixed_param", 12).
			Bytes(TagIEData, "ie_data").
			MustBuild(),
		NewSchema(CmdP2PDiscOffloadPattern, "p2p_disc_offload_pattern").
			Fixed(TagP2PDiscOffloadPatternCmd, "fixed_param", 12).
			Bytes(TagPattern, "pattern").
			Bytes(TagBitmask, "bitmask").
			MustBuild(),
		NewSchema(CmdP2PSetNoA, "p2p_set_noa").
			Fixed(TagP2PSetNoACmd, "fixed_param", 16).
			Structs(TagNoADescriptors, "noa_descriptors", 16).
			MustBuild(),
		NewSchema(CmdP2PSetOppPS, "p2p_set_oppps").
			Fixed(TagP2PSetOppPSCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdP2PListenOffloadStart, "p2p_listen_offload_start").
			Fixed(TagP2PListenOffloadStartCmd, "fixed_param", 36).
			Bytes(TagProbeIE, "probe_ie").
			Bytes(TagBufp, "probe_resp").
			MustBuild(),
		NewSchema(CmdP2PListenOffloadStop, "p2p_listen_offload_stop").
			Fixed(TagP2PListenOffloadStopCmd, "fixed_param", 4).
			MustBuild(),

		// Beacon filter
		NewSchema(CmdAddBcnFilter, "add_bcn_filter").
			Fixed(TagAddBcnFilterCmd, "fixed_param", 8).
			Words(TagArgs, "ie_map").
			MustBuild(),
		NewSchema(CmdRmvBcnFilter, "rmv_bcn_filter").
			Fixed(TagRmvBcnFilterCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdBcnFilterRx, "bcn_filter_rx").
			Fixed(TagBcnFilterRxCmd, "fixed_param", 8).
			MustBuild(),

		// Extended scan
		NewSchema(CmdExtscanStart, "extscan_start").
			Fixed(TagExtscanStartCmd, "fixed_param", 92).
			Structs(TagExtscanBuckets, "extscan_buckets", 40).
			Structs(TagExtscanChannels, "extscan_channels", 16).
			MustBuild(),
		NewSchema(CmdExtscanStop, "extscan_stop").
			Fixed(TagExtscanStopCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdExtscanConfigureWlanChangeMonitor, "extscan_configure_wlan_change_monitor").
			Fixed(TagExtscanConfigureWlanChangeMonitorCmd, "fixed_param", 28).
			Structs(TagWlanChangeEntries, "wlan_change_entries", 24).
			MustBuild(),
		NewSchema(CmdExtscanConfigureHotlistMonitor, "extscan_configure_hotlist_monitor").
			Fixed(TagExtscanConfigureHotlistMonitorCmd, "fixed_param", 24).
			Structs(TagHotlistEntries, "hotlist_entries", 20).
			MustBuild(),
		NewSchema(CmdExtscanGetCachedResults, "extscan_get_cached_results").
			Fixed(TagExtscanGetCachedResultsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdExtscanGetWlanChangeResults, "extscan_get_wlan_change_results").
			Fixed(TagExtscanGetWlanChangeResultsCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdExtscanSetCapabilities, "extscan_set_capabilities").
			Fixed(TagExtscanSetCapabilitiesCmd, "fixed_param", 40).
			Words(TagArgs, "cache_capabilities").
			MustBuild(),
		NewSchema(CmdExtscanGetCapabilities, "extscan_get_capabilities").
			Fixed(TagExtscanGetCapabilitiesCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdExtscanConfigureHotlistSSIDMonitor, "extscan_configure_hotlist_ssid_monitor").
			Fixed(TagExtscanConfigureHotlistSSIDMonitorCmd, "fixed_param", 24).
			Structs(TagSSIDList, "ssid_list", 36).
			MustBuild(),

		// Coexistence
		NewSchema(CmdCoexConfig, "coex_config").
			Fixed(TagCoexConfigCmd, "fixed_param", 36).
			Words(TagCoexParams, "coex_params").
			MustBuild(),
		NewSchema(CmdCoexGetAntennaIsolation, "coex_get_antenna_isolation").
			Fixed(TagCoexGetAntennaIsolationCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdChanAvoidUpdate, "chan_avoid_update").
			Fixed(TagChanAvoidUpdateCmd, "fixed_param", 8).
			Structs(TagChannelList, "channel_list", 24).
			MustBuild(),

		// Packet filter
		NewSchema(CmdBPFGetCapability, "bpf_get_capability").
			Fixed(TagBPFGetCapabilityCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdBPFGetVdevStats, "bpf_get_vdev_stats").
			Fixed(TagBPFGetVdevStatsCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdBPFSetVdevInstructions, "bpf_set_vdev_instructions").
			Fixed(TagBPFSetVdevInstructionsCmd, "fixed_param", 16).
			Bytes(TagBPFProgram, "bpf_program").
			MustBuild(),
		NewSchema(CmdBPFDelVdevInstructions, "bpf_del_vdev_instructions").
			Fixed(TagBPFDelVdevInstructionsCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdBPFSetVdevActiveMode, "bpf_set_vdev_active_mode").
			Fixed(TagBPFSetVdevActiveModeCmd, "fixed_param", 12).
			MustBuild(),
		NewSchema(CmdBPFSetVdevEnable, "bpf_set_vdev_enable").
			Fixed(TagBPFSetVdevEnableCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdBPFSetVdevWorkMemory, "bpf_set_vdev_work_memory").
			Fixed(TagBPFSetVdevWorkMemoryCmd, "fixed_param", 16).
			Bytes(TagBPFProgram, "work_memory").
			MustBuild(),
		NewSchema(CmdBPFGetVdevWorkMemory, "bpf_get_vdev_work_memory").
			Fixed(TagBPFGetVdevWorkMemoryCmd, "fixed_param", 12).
			MustBuild(),

		// Target wake time
		NewSchema(CmdTWTEnable, "twt_enable").
			Fixed(TagTWTEnableCmd, "fixed_param", 48).
			MustBuild(),
		NewSchema(CmdTWTDisable, "twt_disable").
			Fixed(TagTWTDisableCmd, "fixed_param", 4).
			MustBuild(),
		NewSchema(CmdTWTAddDialog, "twt_add_dialog").
			Fixed(TagTWTAddDialogCmd, "fixed_param", 44).
			Words(TagTWTParams, "twt_params").
			MustBuild(),
		NewSchema(CmdTWTDelDialog, "twt_del_dialog").
			Fixed(TagTWTDelDialogCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdTWTPauseDialog, "twt_pause_dialog").
			Fixed(TagTWTPauseDialogCmd, "fixed_param", 16).
			MustBuild(),
		NewSchema(CmdTWTResumeDialog, "twt_resume_dialog").
			Fixed(TagTWTResumeDialogCmd, "fixed_param", 20).
			MustBuild(),

		// Motion detection
		NewSchema(CmdMotionDetConfigParam, "motion_det_config_param").
			Fixed(TagMotionDetConfigParamCmd, "fixed_param", 48).
			Words(TagMDThresholds, "md_thresholds").
			MustBuild(),
		NewSchema(CmdMotionDetBaseLineConfigParam, "motion_det_base_line_config_param").
			Fixed(TagMotionDetBaseLineConfigParamCmd, "fixed_param", 20).
			MustBuild(),
		NewSchema(CmdMotionDetStartStop, "motion_det_start_stop").
			Fixed(TagMotionDetStartStopCmd, "fixed_param", 8).
			MustBuild(),
		NewSchema(CmdMotionDetBaseLineStartStop, "motion_det_base_line_start_stop").
			Fixed(TagMotionDetBaseLineStartStopCmd, "fixed_param", 8).
			MustBuild(),
	}
}
